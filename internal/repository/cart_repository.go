package repository

import (
	"context"
	"time"

	"cuddlecrafts/internal/domain/model"
)

type CartRepository interface {
	ListByToken(ctx context.Context, token string) ([]model.CartItem, error)
	FindByTokenAndProduct(ctx context.Context, token string, productID int64) (model.CartItem, error)

	// 同一商品があれば数量を加算、無ければaddedAtで新規作成。
	AddQuantity(ctx context.Context, token string, productID int64, qty int64, addedAt time.Time) error
	SetQuantity(ctx context.Context, token string, productID int64, qty int64) error
	Remove(ctx context.Context, token string, productID int64) error
	Clear(ctx context.Context, token string) error
}
