package repository

import (
	"context"

	"cuddlecrafts/internal/domain/model"
)

type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, r model.Review) (model.Review, error)
	Delete(ctx context.Context, id int64) error
}
