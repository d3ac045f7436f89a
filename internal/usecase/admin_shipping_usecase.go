package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

type AdminShippingUsecase struct {
	shippingRepo repo.ShippingOptionRepository
}

// DI
func NewAdminShippingUsecase(shippingRepo repo.ShippingOptionRepository) *AdminShippingUsecase {
	return &AdminShippingUsecase{shippingRepo: shippingRepo}
}

type ShippingOptionInput struct {
	Name           string
	Cost           decimal.Decimal
	EstimatedDays  string
	MinOrderAmount *decimal.Decimal
	MaxOrderAmount *decimal.Decimal
	IsActive       bool
}

func (in ShippingOptionInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Cost.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "cost must not be negative")
	}
	if in.MinOrderAmount != nil && in.MaxOrderAmount != nil && in.MaxOrderAmount.LessThan(*in.MinOrderAmount) {
		return NewHTTPError(http.StatusBadRequest, "max_order_amount must not be below min_order_amount")
	}
	return nil
}

func (in ShippingOptionInput) toModel() model.ShippingOption {
	return model.ShippingOption{
		Name:           strings.TrimSpace(in.Name),
		Cost:           in.Cost,
		EstimatedDays:  in.EstimatedDays,
		MinOrderAmount: in.MinOrderAmount,
		MaxOrderAmount: in.MaxOrderAmount,
		IsActive:       in.IsActive,
	}
}

func (u *AdminShippingUsecase) List(ctx context.Context) ([]model.ShippingOption, error) {
	items, err := u.shippingRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *AdminShippingUsecase) Create(ctx context.Context, in ShippingOptionInput) (model.ShippingOption, error) {
	if err := in.validate(); err != nil {
		return model.ShippingOption{}, err
	}

	s, err := u.shippingRepo.Create(ctx, in.toModel())
	if err != nil {
		return model.ShippingOption{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *AdminShippingUsecase) Update(ctx context.Context, id int64, in ShippingOptionInput) (model.ShippingOption, error) {
	if id <= 0 {
		return model.ShippingOption{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return model.ShippingOption{}, err
	}

	s := in.toModel()
	s.ID = id
	if err := u.shippingRepo.Update(ctx, s); err != nil {
		if err == repo.ErrNotFound {
			return model.ShippingOption{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.ShippingOption{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.shippingRepo.FindByID(ctx, id)
	if err != nil {
		return model.ShippingOption{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

func (u *AdminShippingUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.shippingRepo.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
