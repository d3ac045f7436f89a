package usecase

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/domain/model"
	"cuddlecrafts/internal/pricing"
	repo "cuddlecrafts/internal/repository"
)

// 公開側の配送オプション一覧（小計に対して適用可能なものだけ）
type ShippingUsecase struct {
	shippingRepo repo.ShippingOptionRepository
}

// DI
func NewShippingUsecase(shippingRepo repo.ShippingOptionRepository) *ShippingUsecase {
	return &ShippingUsecase{shippingRepo: shippingRepo}
}

func (u *ShippingUsecase) ListEligible(ctx context.Context, subtotal decimal.Decimal) ([]model.ShippingOption, error) {
	if subtotal.IsNegative() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid subtotal")
	}

	options, err := u.shippingRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return pricing.EligibleShippingOptions(subtotal, options), nil
}
