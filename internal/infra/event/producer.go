package event

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"cuddlecrafts/internal/domain/model"
)

// Producer は注文イベントをKafkaへ非同期で流す。
// 送信はbuffered inbox経由で、注文処理自体をブロックしない。
type Producer struct {
	w           *kafka.Writer
	inbox       chan kafka.Message
	closeCh     chan struct{}
	serviceName string
}

func NewProducer(brokers []string, serviceName string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicOrders,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:       make(chan kafka.Message, buf),
		closeCh:     make(chan struct{}),
		serviceName: serviceName,
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer func() {
			_ = p.w.Close()
			close(p.closeCh)
		}()

		for {
			select {
			case <-ctx.Done():
				//バッファに残った分だけflushして終わる
				for {
					select {
					case m, ok := <-p.inbox:
						if !ok {
							return
						}
						p.write(m)
					default:
						return
					}
				}
			case m, ok := <-p.inbox:
				if !ok {
					return
				}
				p.write(m)
			}
		}
	}()
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		log.Printf("event: write: %v", err)
	}
}

// inboxを閉じて残りをflushさせる。
func (p *Producer) Close()      { close(p.inbox) }
func (p *Producer) WaitClosed() { <-p.closeCh }

// OrderPlaced は確定済み注文のイベントを発行する（ベストエフォート）。
func (p *Producer) OrderPlaced(order model.Order) {
	payload, err := json.Marshal(OrderPlacedPayload{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		Email:        order.Email,
		Items:        order.Items,
		Subtotal:     order.Subtotal.StringFixed(2),
		Discount:     order.Discount.StringFixed(2),
		ShippingCost: order.ShippingCost.StringFixed(2),
		TotalAmount:  order.TotalAmount.StringFixed(2),
		CouponCode:   order.CouponCode,
	})
	if err != nil {
		log.Printf("event: marshal payload: %v", err)
		return
	}

	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  EventOrderPlaced,
		OccurredAt: time.Now(),
		Producer:   p.serviceName,
		Payload:    payload,
	}
	value, err := json.Marshal(env)
	if err != nil {
		log.Printf("event: marshal envelope: %v", err)
		return
	}

	//inboxが詰まっていたら捨てる。注文処理は待たせない。
	select {
	case p.inbox <- kafka.Message{
		Key:   []byte(order.OrderNumber),
		Value: value,
		Time:  time.Now(),
	}:
	default:
		log.Printf("event: inbox full, dropped %s", order.OrderNumber)
	}
}

// NoopPublisher はKafka未設定のとき用。
type NoopPublisher struct{}

func (NoopPublisher) OrderPlaced(model.Order) {}
