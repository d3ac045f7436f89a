package repository

import (
	"context"
	"errors"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"

	"gorm.io/gorm"
)

type ShippingGormRepository struct {
	db *gorm.DB
}

// DI
func NewShippingGormRepository(db *gorm.DB) *ShippingGormRepository {
	return &ShippingGormRepository{db: db}
}

// 登録順（id昇順）で返す。適用順のデフォルト選択がこの順に依存する。
func (r *ShippingGormRepository) List(ctx context.Context) ([]model.ShippingOption, error) {
	var options []model.ShippingOption
	if err := r.db.WithContext(ctx).Order("id asc").Find(&options).Error; err != nil {
		return []model.ShippingOption{}, err
	}
	return options, nil
}

func (r *ShippingGormRepository) FindByID(ctx context.Context, id int64) (model.ShippingOption, error) {
	var s model.ShippingOption
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShippingOption{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShippingOption{}, err
	}
	return s, nil
}

func (r *ShippingGormRepository) Create(ctx context.Context, s model.ShippingOption) (model.ShippingOption, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.ShippingOption{}, err
	}
	return s, nil
}

func (r *ShippingGormRepository) Update(ctx context.Context, s model.ShippingOption) error {
	res := r.db.WithContext(ctx).Model(&model.ShippingOption{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"name":             s.Name,
		"cost":             s.Cost,
		"estimated_days":   s.EstimatedDays,
		"min_order_amount": s.MinOrderAmount,
		"max_order_amount": s.MaxOrderAmount,
		"is_active":        s.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShippingGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ShippingOption{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
