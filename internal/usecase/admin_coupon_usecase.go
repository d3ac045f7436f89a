package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

type AdminCouponUsecase struct {
	couponRepo repo.CouponRepository
}

// DI
func NewAdminCouponUsecase(couponRepo repo.CouponRepository) *AdminCouponUsecase {
	return &AdminCouponUsecase{couponRepo: couponRepo}
}

type CouponInput struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinPurchase   *decimal.Decimal
	MaxDiscount   *decimal.Decimal
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	UsageLimit    *int64
	IsActive      bool
}

func (in CouponInput) validate() error {
	if strings.TrimSpace(in.Code) == "" {
		return NewHTTPError(http.StatusBadRequest, "code is required")
	}
	switch model.DiscountType(in.DiscountType) {
	case model.DiscountTypePercentage, model.DiscountTypeFixed:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid discount_type")
	}
	if in.DiscountValue.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "discount_value must not be negative")
	}
	if in.ValidFrom != nil && in.ValidUntil != nil && in.ValidUntil.Before(*in.ValidFrom) {
		return NewHTTPError(http.StatusBadRequest, "valid_until must not be before valid_from")
	}
	return nil
}

func (in CouponInput) toModel() model.Coupon {
	return model.Coupon{
		Code:          strings.ToUpper(strings.TrimSpace(in.Code)),
		DiscountType:  model.DiscountType(in.DiscountType),
		DiscountValue: in.DiscountValue,
		MinPurchase:   in.MinPurchase,
		MaxDiscount:   in.MaxDiscount,
		ValidFrom:     in.ValidFrom,
		ValidUntil:    in.ValidUntil,
		UsageLimit:    in.UsageLimit,
		IsActive:      in.IsActive,
	}
}

func (u *AdminCouponUsecase) List(ctx context.Context) ([]model.Coupon, error) {
	items, err := u.couponRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *AdminCouponUsecase) Create(ctx context.Context, in CouponInput) (model.Coupon, error) {
	if err := in.validate(); err != nil {
		return model.Coupon{}, err
	}

	c, err := u.couponRepo.Create(ctx, in.toModel())
	if err != nil {
		return model.Coupon{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *AdminCouponUsecase) Update(ctx context.Context, id int64, in CouponInput) (model.Coupon, error) {
	if id <= 0 {
		return model.Coupon{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return model.Coupon{}, err
	}

	c := in.toModel()
	c.ID = id
	if err := u.couponRepo.Update(ctx, c); err != nil {
		if err == repo.ErrNotFound {
			return model.Coupon{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Coupon{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.couponRepo.FindByID(ctx, id)
	if err != nil {
		return model.Coupon{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *AdminCouponUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.couponRepo.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
