package event

import (
	"encoding/json"
	"time"
)

const (
	TopicOrders = "cuddlecrafts.orders"

	EventOrderPlaced = "OrderPlaced"
)

type Envelope struct {
	EventID    string          `json:"event_id"`   // uuid
	EventType  string          `json:"event_type"` // 上のconst
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"` // e.g. "storefront-api"
	Payload    json.RawMessage `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID      int64    `json:"order_id"`
	OrderNumber  string   `json:"order_number"`
	Email        string   `json:"email"`
	Items        []string `json:"items"`
	Subtotal     string   `json:"subtotal"`
	Discount     string   `json:"discount"`
	ShippingCost string   `json:"shipping_cost"`
	TotalAmount  string   `json:"total_amount"`
	CouponCode   *string  `json:"coupon_code,omitempty"`
}
