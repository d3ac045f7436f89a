package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

const testToken = "11111111-2222-3333-4444-555555555555"

func TestGetCart_MaterializesItemsAndShipping(t *testing.T) {
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewCartUsecase(carts, products, shipping)

	added := time.Now()
	carts.On("ListByToken", mock.Anything, testToken).Return([]model.CartItem{
		{ProductID: 1, Quantity: 2, AddedAt: added},
		{ProductID: 2, Quantity: 1, AddedAt: added},
	}, nil)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Cuddly Brown Bear", Price: d("29.99"),
		Images: []string{"https://example.com/bear.jpg"},
	}, nil)
	products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{
		ID: 2, Name: "Fluffy White Rabbit", Price: d("24.99"),
	}, nil)
	shipping.On("List", mock.Anything).Return([]model.ShippingOption{
		{Name: "Standard", MinOrderAmount: dp("0"), IsActive: true},
		{Name: "Free", MinOrderAmount: dp("100"), IsActive: true},
	}, nil)

	resp, err := uc.GetCart(context.Background(), testToken)

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "https://example.com/bear.jpg", resp.Items[0].Image)
	assert.True(t, resp.Subtotal.Equal(d("84.97")))
	//100ドル未満なのでFreeは外れる
	assert.Len(t, resp.ShippingOptions, 1)
	assert.Equal(t, "Standard", resp.ShippingOptions[0].Name)
}

// 消えた商品の明細は表示から落とすだけ
func TestGetCart_SkipsMissingProducts(t *testing.T) {
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewCartUsecase(carts, products, shipping)

	carts.On("ListByToken", mock.Anything, testToken).Return([]model.CartItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 99, Quantity: 3},
	}, nil)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Cuddly Brown Bear", Price: d("29.99"),
	}, nil)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)
	shipping.On("List", mock.Anything).Return([]model.ShippingOption{}, nil)

	resp, err := uc.GetCart(context.Background(), testToken)

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.True(t, resp.Subtotal.Equal(d("29.99")))
}

func TestAddToCart_UnknownProductRejected(t *testing.T) {
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewCartUsecase(carts, products, shipping)

	products.On("FindByID", mock.Anything, int64(42)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), testToken, AddCartInput{ProductID: 42, Quantity: 1})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	carts.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCart_InvalidInput(t *testing.T) {
	uc := NewCartUsecase(new(CartRepoMock), new(ProductRepoMock), new(ShippingRepoMock))

	_, err := uc.AddToCart(context.Background(), "", AddCartInput{ProductID: 1, Quantity: 1})
	assert.Error(t, err)

	_, err = uc.AddToCart(context.Background(), testToken, AddCartInput{ProductID: 1, Quantity: 0})
	assert.Error(t, err)
}

// 0以下の数量は削除として扱う
func TestUpdateCartItem_ZeroQuantityRemoves(t *testing.T) {
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewCartUsecase(carts, products, shipping)

	carts.On("Remove", mock.Anything, testToken, int64(1)).Return(nil)
	carts.On("ListByToken", mock.Anything, testToken).Return([]model.CartItem{}, nil)
	shipping.On("List", mock.Anything).Return([]model.ShippingOption{}, nil)

	resp, err := uc.UpdateCartItem(context.Background(), testToken, 1, UpdateCartItemInput{Quantity: 0})

	assert.NoError(t, err)
	assert.Empty(t, resp.Items)
	carts.AssertCalled(t, "Remove", mock.Anything, testToken, int64(1))
	carts.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveCartItem_NotFound(t *testing.T) {
	carts := new(CartRepoMock)
	uc := NewCartUsecase(carts, new(ProductRepoMock), new(ShippingRepoMock))

	carts.On("Remove", mock.Anything, testToken, int64(7)).Return(repo.ErrNotFound)

	_, err := uc.RemoveCartItem(context.Background(), testToken, 7)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
