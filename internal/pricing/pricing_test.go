package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"cuddlecrafts/internal/domain/model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func tp(t time.Time) *time.Time {
	return &t
}

func TestSubtotal(t *testing.T) {
	items := []LineItem{
		{Product: model.Product{Price: d("29.99")}, Quantity: 2},
		{Product: model.Product{Price: d("24.99")}, Quantity: 1},
	}

	assert.True(t, Subtotal(items).Equal(d("84.97")))
	assert.True(t, Subtotal(nil).Equal(decimal.Zero))
}

func TestComputeDiscount_PercentageWithCap(t *testing.T) {
	//20% off、最低50ドル、上限15ドル
	c := &model.Coupon{
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: d("20"),
		MinPurchase:   dp("50"),
		MaxDiscount:   dp("15"),
	}

	//100ドルの20%は20だが上限15で止まる
	assert.True(t, ComputeDiscount(d("100"), c).Equal(d("15")))

	//60ドルの20%=12は上限未満なのでそのまま
	assert.True(t, ComputeDiscount(d("60"), c).Equal(d("12")))
}

func TestComputeDiscount_BelowMinPurchaseIsZero(t *testing.T) {
	c := &model.Coupon{
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: d("10"),
		MinPurchase:   dp("50"),
	}

	assert.True(t, ComputeDiscount(d("30"), c).Equal(decimal.Zero))
	assert.True(t, ComputeDiscount(d("50"), c).Equal(d("10")))
}

func TestComputeDiscount_FixedLargerThanSubtotal(t *testing.T) {
	//固定額の割引は小計ではクランプしない
	c := &model.Coupon{
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: d("40"),
	}

	assert.True(t, ComputeDiscount(d("25"), c).Equal(d("40")))
}

func TestComputeDiscount_NilCoupon(t *testing.T) {
	assert.True(t, ComputeDiscount(d("100"), nil).Equal(decimal.Zero))
}

func TestValidateCoupon_Window(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	notYet := model.Coupon{ValidFrom: tp(now.Add(time.Hour))}
	assert.ErrorIs(t, ValidateCoupon(notYet, d("100"), now), ErrCouponNotYetValid)

	expired := model.Coupon{ValidUntil: tp(now.Add(-time.Hour))}
	assert.ErrorIs(t, ValidateCoupon(expired, d("100"), now), ErrCouponExpired)

	//両端は含む
	boundary := model.Coupon{ValidFrom: tp(now), ValidUntil: tp(now)}
	assert.NoError(t, ValidateCoupon(boundary, d("100"), now))
}

func TestValidateCoupon_MinPurchaseMessage(t *testing.T) {
	now := time.Now()
	c := model.Coupon{MinPurchase: dp("50")}

	err := ValidateCoupon(c, d("30"), now)
	assert.Error(t, err)

	mp, ok := err.(*MinPurchaseError)
	assert.True(t, ok)
	assert.Equal(t, "minimum purchase of $50.00 required", mp.Error())
}

func TestEligibleShippingOptions(t *testing.T) {
	options := []model.ShippingOption{
		{Name: "Standard", MinOrderAmount: dp("0"), IsActive: true},
		{Name: "Express", MinOrderAmount: dp("50"), IsActive: true},
		{Name: "Freight", MinOrderAmount: dp("100"), IsActive: true},
	}

	got := EligibleShippingOptions(d("60"), options)
	assert.Len(t, got, 2)
	//入力順を保つ
	assert.Equal(t, "Standard", got[0].Name)
	assert.Equal(t, "Express", got[1].Name)
}

func TestEligibleShippingOptions_Bounds(t *testing.T) {
	options := []model.ShippingOption{
		{Name: "Small", MaxOrderAmount: dp("50"), IsActive: true},
		{Name: "Open", IsActive: true},
		{Name: "Inactive", IsActive: false},
	}

	got := EligibleShippingOptions(d("50"), options)
	assert.Len(t, got, 2)

	got = EligibleShippingOptions(d("50.01"), options)
	assert.Len(t, got, 1)
	assert.Equal(t, "Open", got[0].Name)
}

func TestTotal_ClampsToZero(t *testing.T) {
	assert.True(t, Total(d("25"), d("40"), d("0")).Equal(decimal.Zero))
	assert.True(t, Total(d("25"), d("40"), d("5.99")).Equal(decimal.Zero))
	assert.True(t, Total(d("100"), d("15"), d("5.99")).Equal(d("90.99")))
}

// 割引を増やしても合計は増えない
func TestTotal_MonotonicInDiscount(t *testing.T) {
	subtotal := d("80")
	shipping := d("5.99")

	prev := Total(subtotal, d("0"), shipping)
	for _, disc := range []string{"10", "20", "40", "80", "120"} {
		cur := Total(subtotal, d(disc), shipping)
		assert.True(t, cur.LessThanOrEqual(prev))
		assert.True(t, cur.GreaterThanOrEqual(decimal.Zero))
		prev = cur
	}
}
