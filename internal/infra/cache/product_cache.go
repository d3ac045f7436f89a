package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// 商品詳細の読み取りをRedisでキャッシュするProductRepositoryのデコレータ。
// カートの明細結合がFindByIDを多発するのでそこだけ持つ。一覧は素通し。
type ProductCacheRepository struct {
	inner repo.ProductRepository
	rdb   *redis.Client
	ttl   time.Duration
}

func NewProductCacheRepository(inner repo.ProductRepository, rdb *redis.Client, ttl time.Duration) *ProductCacheRepository {
	return &ProductCacheRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (r *ProductCacheRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	return r.inner.List(ctx, q)
}

func (r *ProductCacheRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	if raw, err := r.rdb.Get(ctx, productKey(id)).Bytes(); err == nil {
		var p model.Product
		if err := json.Unmarshal(raw, &p); err == nil {
			return p, nil
		}
	}

	p, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	// キャッシュ失敗は無視（次回DBから読めばよい）
	if raw, err := json.Marshal(p); err == nil {
		_ = r.rdb.Set(ctx, productKey(id), raw, r.ttl).Err()
	}

	return p, nil
}

func (r *ProductCacheRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	return r.inner.Create(ctx, p)
}

func (r *ProductCacheRepository) Update(ctx context.Context, p model.Product) error {
	if err := r.inner.Update(ctx, p); err != nil {
		return err
	}
	_ = r.rdb.Del(ctx, productKey(p.ID)).Err()
	return nil
}

func (r *ProductCacheRepository) SoftDelete(ctx context.Context, id int64) error {
	if err := r.inner.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = r.rdb.Del(ctx, productKey(id)).Err()
	return nil
}
