package repository

import (
	"context"

	"cuddlecrafts/internal/domain/model"
)

type CouponRepository interface {
	List(ctx context.Context) ([]model.Coupon, error)
	FindByID(ctx context.Context, id int64) (model.Coupon, error)

	// activeなクーポンをコードで検索（大文字小文字を区別しない）。
	FindByCode(ctx context.Context, code string) (model.Coupon, error)

	Create(ctx context.Context, c model.Coupon) (model.Coupon, error)
	Update(ctx context.Context, c model.Coupon) error
	Delete(ctx context.Context, id int64) error

	// used_countを+1する（上限の強制はしない）。
	IncrementUsedCount(ctx context.Context, id int64) error
}
