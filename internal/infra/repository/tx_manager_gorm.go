package repository

import (
	"context"

	repo "cuddlecrafts/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders   repo.OrderRepository
	carts    repo.CartRepository
	coupons  repo.CouponRepository
	products repo.ProductRepository
	shipping repo.ShippingOptionRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository            { return r.orders }
func (r *txReposGorm) Carts() repo.CartRepository              { return r.carts }
func (r *txReposGorm) Coupons() repo.CouponRepository          { return r.coupons }
func (r *txReposGorm) Products() repo.ProductRepository        { return r.products }
func (r *txReposGorm) Shipping() repo.ShippingOptionRepository { return r.shipping }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:   NewOrderGormRepository(tx),
			carts:    NewCartGormRepository(tx),
			coupons:  NewCouponGormRepository(tx),
			products: NewProductGormRepository(tx),
			shipping: NewShippingGormRepository(tx),
		}
		return fn(r)
	})
}
