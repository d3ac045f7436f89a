package repository

import (
	"context"
	"time"

	"cuddlecrafts/internal/domain/model"
)

// 管理者用の注文一覧フィルタ
type OrderListFilter struct {
	Page   int
	Limit  int
	Status string
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)
	Update(ctx context.Context, order model.Order) error
	Delete(ctx context.Context, orderID int64) error
}
