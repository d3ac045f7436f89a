package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"cuddlecrafts/internal/domain/model"
	"cuddlecrafts/internal/pricing"
	repo "cuddlecrafts/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// 明細は商品と結合して返し、商品が消えた明細は表示から黙って除く。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	productRepo  repo.ProductRepository
	shippingRepo repo.ShippingOptionRepository
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	shippingRepo repo.ShippingOptionRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		shippingRepo: shippingRepo,
	}
}

type CartItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int64           `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// 小計が変わるたびに適用可能な配送を返し直す。
// 選択中のオプションが外れたらクライアントは先頭から選び直す。
type CartResponse struct {
	Items           []CartItemResponse     `json:"items"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	ShippingOptions []model.ShippingOption `json:"shipping_options"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

func (u *CartUsecase) GetCart(ctx context.Context, token string) (CartResponse, error) {
	if token == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}
	return u.buildCartResponse(ctx, token)
}

// カートに追加（同一商品は数量加算）
func (u *CartUsecase) AddToCart(ctx context.Context, token string, in AddCartInput) (CartResponse, error) {
	if token == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//商品チェック
	_, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.AddQuantity(ctx, token, in.ProductID, in.Quantity, time.Now()); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, token)
}

// 数量変更。0以下は削除扱い。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, token string, productID int64, in UpdateCartItemInput) (CartResponse, error) {
	if token == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if in.Quantity <= 0 {
		return u.RemoveCartItem(ctx, token, productID)
	}

	if err := u.cartRepo.SetQuantity(ctx, token, productID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, token)
}

// 明細削除
func (u *CartUsecase) RemoveCartItem(ctx context.Context, token string, productID int64) (CartResponse, error) {
	if token == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.cartRepo.Remove(ctx, token, productID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, token)
}

// カート明細を商品と結合してline itemにする。
// 商品が見つからない明細は表示から除くだけで、ストレージからは消さない。
func materializeCart(ctx context.Context, carts repo.CartRepository, products repo.ProductRepository, token string) ([]pricing.LineItem, error) {
	entries, err := carts.ListByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	items := make([]pricing.LineItem, 0, len(entries))
	for _, e := range entries {
		p, err := products.FindByID(ctx, e.ProductID)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}

		items = append(items, pricing.LineItem{
			Product:  p,
			Quantity: e.Quantity,
			AddedAt:  e.AddedAt,
		})
	}
	return items, nil
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, token string) (CartResponse, error) {
	items, err := materializeCart(ctx, u.cartRepo, u.productRepo, token)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		image := ""
		if len(it.Product.Images) > 0 {
			image = it.Product.Images[0]
		}
		respItems = append(respItems, CartItemResponse{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Image:     image,
			Quantity:  it.Quantity,
			AddedAt:   it.AddedAt,
		})
	}

	subtotal := pricing.Subtotal(items)

	options, err := u.shippingRepo.List(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{
		Items:           respItems,
		Subtotal:        subtotal,
		ShippingOptions: pricing.EligibleShippingOptions(subtotal, options),
	}, nil
}
