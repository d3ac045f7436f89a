package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/domain/model"
	"cuddlecrafts/internal/pricing"
	repo "cuddlecrafts/internal/repository"
)

// CouponUsecase はカートへのクーポン適用チェック。
// 拒否理由は「無効なコード/期限前/期限切れ/最低購入額」をユーザー向けに区別する。
type CouponUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
	couponRepo  repo.CouponRepository
}

// DI
func NewCouponUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	couponRepo repo.CouponRepository,
) *CouponUsecase {
	return &CouponUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
	}
}

type ApplyCouponInput struct {
	Code string
}

// バナー表示用。コードと割引内容だけを公開する。
type ActiveCouponOutput struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// ListActive は今使えるクーポンを返す（active かつ 有効期間内）。
// 最低購入額は小計が決まるまで判定できないのでここでは見ない。
func (u *CouponUsecase) ListActive(ctx context.Context) ([]ActiveCouponOutput, error) {
	coupons, err := u.couponRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := time.Now()
	out := make([]ActiveCouponOutput, 0, len(coupons))
	for _, c := range coupons {
		if !c.IsActive {
			continue
		}
		if err := pricing.ValidateCoupon(c, decimal.Zero, now); err != nil {
			var mp *pricing.MinPurchaseError
			if !errors.As(err, &mp) {
				continue
			}
		}
		out = append(out, ActiveCouponOutput{
			Code:          c.Code,
			DiscountType:  string(c.DiscountType),
			DiscountValue: c.DiscountValue,
		})
	}
	return out, nil
}

type ApplyCouponOutput struct {
	Coupon   model.Coupon    `json:"coupon"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
}

func (u *CouponUsecase) ApplyCoupon(ctx context.Context, token string, in ApplyCouponInput) (ApplyCouponOutput, error) {
	if token == "" {
		return ApplyCouponOutput{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return ApplyCouponOutput{}, NewHTTPError(http.StatusBadRequest, "please enter a coupon code")
	}

	items, err := materializeCart(ctx, u.cartRepo, u.productRepo, token)
	if err != nil {
		return ApplyCouponOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	subtotal := pricing.Subtotal(items)

	coupon, err := u.couponRepo.FindByCode(ctx, code)
	if err == repo.ErrNotFound {
		return ApplyCouponOutput{}, NewHTTPError(http.StatusBadRequest, "invalid coupon code")
	}
	if err != nil {
		return ApplyCouponOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := pricing.ValidateCoupon(coupon, subtotal, time.Now()); err != nil {
		return ApplyCouponOutput{}, couponRejection(err)
	}

	return ApplyCouponOutput{
		Coupon:   coupon,
		Subtotal: subtotal,
		Discount: pricing.ComputeDiscount(subtotal, &coupon),
	}, nil
}

// pricingの拒否理由をユーザー向けメッセージへ写す
func couponRejection(err error) error {
	switch {
	case errors.Is(err, pricing.ErrCouponNotYetValid):
		return NewHTTPError(http.StatusBadRequest, "coupon is not yet valid")
	case errors.Is(err, pricing.ErrCouponExpired):
		return NewHTTPError(http.StatusBadRequest, "coupon has expired")
	default:
		var mp *pricing.MinPurchaseError
		if errors.As(err, &mp) {
			return NewHTTPError(http.StatusBadRequest, mp.Error())
		}
		return NewHTTPError(http.StatusBadRequest, "invalid coupon code")
	}
}
