package repository

import (
	"context"
	"errors"
	"time"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートの明細を追加順で返す
func (r *CartGormRepository) ListByToken(ctx context.Context, token string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_token = ?", token).
		Order("added_at asc").Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

func (r *CartGormRepository) FindByTokenAndProduct(ctx context.Context, token string, productID int64) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_token = ? AND product_id = ?", token, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 同一商品は数量加算、無ければ新規作成（upsert）
func (r *CartGormRepository) AddQuantity(ctx context.Context, token string, productID int64, qty int64, addedAt time.Time) error {
	item := model.CartItem{
		CartToken: token,
		ProductID: productID,
		Quantity:  qty,
		AddedAt:   addedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_token"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", qty),
			}),
		}).
		Create(&item).Error
}

func (r *CartGormRepository) SetQuantity(ctx context.Context, token string, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_token = ? AND product_id = ?", token, productID).
		Update("quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CartGormRepository) Remove(ctx context.Context, token string, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("cart_token = ? AND product_id = ?", token, productID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カートを空にする（明細0件でもエラーにしない）
func (r *CartGormRepository) Clear(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("cart_token = ?", token).
		Delete(&model.CartItem{}).Error
}
