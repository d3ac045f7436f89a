package repository

import (
	"context"

	"cuddlecrafts/internal/domain/model"
)

type ShippingOptionRepository interface {
	// 登録順（id昇順）で返す。適用可否の判定は呼び出し側。
	List(ctx context.Context) ([]model.ShippingOption, error)
	FindByID(ctx context.Context, id int64) (model.ShippingOption, error)

	Create(ctx context.Context, s model.ShippingOption) (model.ShippingOption, error)
	Update(ctx context.Context, s model.ShippingOption) error
	Delete(ctx context.Context, id int64) error
}
