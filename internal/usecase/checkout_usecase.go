package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"cuddlecrafts/internal/domain/model"
	"cuddlecrafts/internal/pricing"
	repo "cuddlecrafts/internal/repository"
)

// 確定済み注文のイベント発行（Kafka未設定ならno-op実装を渡す）
type OrderEventPublisher interface {
	OrderPlaced(order model.Order)
}

// チェックアウトフォームの入力全体
type CheckoutInput struct {
	CustomerName string
	Email        string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string

	PaymentMethod string
	CardNumber    string
	CardName      string
	ExpiryDate    string
	CVV           string

	CouponCode       string
	ShippingOptionID int64
	Notes            string
}

// フォーム検証はfield→messageのマップを返す。空なら通過。
type CheckoutValidator interface {
	Validate(in CheckoutInput) map[string]string
}

// フィールド単位のエラーをそのままクライアントへ返すための型
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// 同一ミリ秒に2件来てもuniqueインデックスに当たらないよう乱数を足す。
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// CheckoutUsecase は注文確定。
// 注文作成・クーポン使用数・カートクリアは1トランザクションで行い、
// 途中で失敗したらカートはそのまま残る。
type CheckoutUsecase struct {
	tx        repo.TransactionManager
	validator CheckoutValidator
	publisher OrderEventPublisher
}

// DI
func NewCheckoutUsecase(tx repo.TransactionManager, validator CheckoutValidator, publisher OrderEventPublisher) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, validator: validator, publisher: publisher}
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, token string, in CheckoutInput) (model.Order, error) {
	if token == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}

	if fields := u.validator.Validate(in); len(fields) > 0 {
		return model.Order{}, &ValidationError{Fields: fields}
	}

	var created model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := materializeCart(ctx, r.Carts(), r.Products(), token)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		subtotal := pricing.Subtotal(items)

		//クーポンは確定時にサーバー側で再検証する
		var coupon *model.Coupon
		if in.CouponCode != "" {
			c, err := r.Coupons().FindByCode(ctx, in.CouponCode)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid coupon code")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := pricing.ValidateCoupon(c, subtotal, time.Now()); err != nil {
				return couponRejection(err)
			}
			coupon = &c
		}
		discount := pricing.ComputeDiscount(subtotal, coupon)

		//配送も小計で再判定（数量編集で外れていたら選び直させる）
		option, err := r.Shipping().FindByID(ctx, in.ShippingOptionID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "invalid shipping option")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(pricing.EligibleShippingOptions(subtotal, []model.ShippingOption{option})) == 0 {
			return NewHTTPError(http.StatusBadRequest, "selected shipping option is not available for this order")
		}

		total := pricing.Total(subtotal, discount, option.Cost)

		lines := make([]string, 0, len(items))
		for _, it := range items {
			lines = append(lines, fmt.Sprintf("%s (x%d)", it.Product.Name, it.Quantity))
		}

		order := model.Order{
			OrderNumber:  newOrderNumber(time.Now()),
			CustomerName: in.CustomerName,
			Email:        in.Email,
			Phone:        in.Phone,
			Address: fmt.Sprintf("%s, %s, %s %s, %s",
				in.Address, in.City, in.State, in.ZipCode, in.Country),
			Items:          lines,
			Subtotal:       subtotal,
			Discount:       discount,
			ShippingCost:   option.Cost,
			TotalAmount:    total,
			ShippingMethod: option.Name,
			Status:         model.OrderStatusPending,
			PaymentMethod:  in.PaymentMethod,
			Notes:          in.Notes,
		}
		if coupon != nil {
			order.CouponCode = &coupon.Code
		}

		created, err = r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if coupon != nil {
			if err := r.Coupons().IncrementUsedCount(ctx, coupon.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		//注文が作れたときだけカートを空にする（失敗時はrollbackで残る）
		if err := r.Carts().Clear(ctx, token); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})

	if err != nil {
		return model.Order{}, err
	}

	//commit後のイベント発行はベストエフォート
	u.publisher.OrderPlaced(created)

	return created, nil
}
