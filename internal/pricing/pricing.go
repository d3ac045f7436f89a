package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/domain/model"
)

// カート明細と解決済み商品を結合したline item。
type LineItem struct {
	Product  model.Product
	Quantity int64
	AddedAt  time.Time
}

var (
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponExpired     = errors.New("coupon has expired")
)

// 最低購入額に満たないとき。必要額をメッセージに含める。
type MinPurchaseError struct {
	Required decimal.Decimal
}

func (e *MinPurchaseError) Error() string {
	return fmt.Sprintf("minimum purchase of $%s required", e.Required.StringFixed(2))
}

// Subtotal はprice×quantityの合計。
func Subtotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

// ComputeDiscount は小計とクーポンから割引額を返す。
// minPurchase未満は黙って0。割引は小計ではクランプしない（最終合計側で0止め）。
func ComputeDiscount(subtotal decimal.Decimal, c *model.Coupon) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	if c.MinPurchase != nil && subtotal.LessThan(*c.MinPurchase) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	if c.DiscountType == model.DiscountTypePercentage {
		discount = subtotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100))
	} else {
		discount = c.DiscountValue
	}

	if c.MaxDiscount != nil && discount.GreaterThan(*c.MaxDiscount) {
		discount = *c.MaxDiscount
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	return discount
}

// ValidateCoupon は適用不可の理由を区別して返す。期間は両端を含む。
func ValidateCoupon(c model.Coupon, subtotal decimal.Decimal, now time.Time) error {
	if c.ValidFrom != nil && c.ValidFrom.After(now) {
		return ErrCouponNotYetValid
	}
	if c.ValidUntil != nil && c.ValidUntil.Before(now) {
		return ErrCouponExpired
	}
	if c.MinPurchase != nil && c.MinPurchase.IsPositive() && subtotal.LessThan(*c.MinPurchase) {
		return &MinPurchaseError{Required: *c.MinPurchase}
	}
	return nil
}

// EligibleShippingOptions は適用可能な配送オプションを入力順のまま返す。
// 境界なし（nil）は開いた側として扱う。
func EligibleShippingOptions(subtotal decimal.Decimal, options []model.ShippingOption) []model.ShippingOption {
	eligible := make([]model.ShippingOption, 0, len(options))
	for _, o := range options {
		if !o.IsActive {
			continue
		}
		if o.MinOrderAmount != nil && subtotal.LessThan(*o.MinOrderAmount) {
			continue
		}
		if o.MaxOrderAmount != nil && subtotal.GreaterThan(*o.MaxOrderAmount) {
			continue
		}
		eligible = append(eligible, o)
	}
	return eligible
}

// Total は max(0, subtotal − discount + shippingCost)。
func Total(subtotal, discount, shippingCost decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discount).Add(shippingCost)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
