package repository

import (
	"context"
	"errors"
	"strings"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"

	"gorm.io/gorm"
)

type CouponGormRepository struct {
	db *gorm.DB
}

// DI
func NewCouponGormRepository(db *gorm.DB) *CouponGormRepository {
	return &CouponGormRepository{db: db}
}

func (r *CouponGormRepository) List(ctx context.Context) ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&coupons).Error
	if err != nil {
		return []model.Coupon{}, err
	}
	return coupons, nil
}

func (r *CouponGormRepository) FindByID(ctx context.Context, id int64) (model.Coupon, error) {
	var c model.Coupon
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Coupon{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Coupon{}, err
	}
	return c, nil
}

// activeなクーポンをコードで検索（保存時に大文字化しているので大文字で照合）
func (r *CouponGormRepository) FindByCode(ctx context.Context, code string) (model.Coupon, error) {
	var c model.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", strings.ToUpper(strings.TrimSpace(code)), true).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Coupon{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Coupon{}, err
	}
	return c, nil
}

func (r *CouponGormRepository) Create(ctx context.Context, c model.Coupon) (model.Coupon, error) {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Coupon{}, err
	}
	return c, nil
}

func (r *CouponGormRepository) Update(ctx context.Context, c model.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	res := r.db.WithContext(ctx).Model(&model.Coupon{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"code":           c.Code,
		"discount_type":  c.DiscountType,
		"discount_value": c.DiscountValue,
		"min_purchase":   c.MinPurchase,
		"max_discount":   c.MaxDiscount,
		"valid_from":     c.ValidFrom,
		"valid_until":    c.ValidUntil,
		"usage_limit":    c.UsageLimit,
		"is_active":      c.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CouponGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Coupon{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// used_countを+1（上限は見ない）
func (r *CouponGormRepository) IncrementUsedCount(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("id = ?", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
