package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

func newCheckoutFixture() (*txReposStub, *txManagerStub, *capturePublisher) {
	repos := &txReposStub{
		orders:   new(OrderRepoMock),
		carts:    new(CartRepoMock),
		coupons:  new(CouponRepoMock),
		products: new(ProductRepoMock),
		shipping: new(ShippingRepoMock),
	}
	return repos, &txManagerStub{repos: repos}, &capturePublisher{}
}

func checkoutInput() CheckoutInput {
	return CheckoutInput{
		CustomerName:     "Hana Sato",
		Email:            "hana@example.com",
		Phone:            "090-1234-5678",
		Address:          "1-2-3 Sakura",
		City:             "Yokohama",
		State:            "Kanagawa",
		ZipCode:          "220-0001",
		Country:          "Japan",
		PaymentMethod:    "cod",
		ShippingOptionID: 1,
	}
}

func stubCartWithBear(repos *txReposStub) {
	repos.carts.On("ListByToken", mock.Anything, testToken).Return([]model.CartItem{
		{ProductID: 1, Quantity: 2},
	}, nil)
	repos.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Cuddly Brown Bear", Price: d("29.99"),
	}, nil)
}

func TestCheckout_Success(t *testing.T) {
	repos, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, okValidator{}, pub)

	stubCartWithBear(repos)
	repos.shipping.On("FindByID", mock.Anything, int64(1)).Return(model.ShippingOption{
		ID: 1, Name: "Standard Shipping", Cost: d("5.99"), MinOrderAmount: dp("0"), IsActive: true,
	}, nil)
	repos.orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Return(func(o model.Order) model.Order {
			o.ID = 10
			return o
		}, nil)
	repos.carts.On("Clear", mock.Anything, testToken).Return(nil)

	order, err := uc.Checkout(context.Background(), testToken, checkoutInput())

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.True(t, order.Subtotal.Equal(d("59.98")))
	assert.True(t, order.Discount.Equal(d("0")))
	assert.True(t, order.TotalAmount.Equal(d("65.97")))
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, []string{"Cuddly Brown Bear (x2)"}, order.Items)
	assert.Equal(t, "1-2-3 Sakura, Yokohama, Kanagawa 220-0001, Japan", order.Address)

	repos.carts.AssertCalled(t, "Clear", mock.Anything, testToken)
	assert.Len(t, pub.published, 1)
	assert.Equal(t, order.OrderNumber, pub.published[0].OrderNumber)
}

func TestCheckout_CouponAppliedAndCounted(t *testing.T) {
	repos, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, okValidator{}, pub)

	stubCartWithBear(repos)
	repos.coupons.On("FindByCode", mock.Anything, "SAVE10").Return(model.Coupon{
		ID:            3,
		Code:          "SAVE10",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: d("10"),
		IsActive:      true,
	}, nil)
	repos.shipping.On("FindByID", mock.Anything, int64(1)).Return(model.ShippingOption{
		ID: 1, Name: "Standard Shipping", Cost: d("5.99"), IsActive: true,
	}, nil)
	repos.orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Return(func(o model.Order) model.Order { return o }, nil)
	repos.coupons.On("IncrementUsedCount", mock.Anything, int64(3)).Return(nil)
	repos.carts.On("Clear", mock.Anything, testToken).Return(nil)

	in := checkoutInput()
	in.CouponCode = "SAVE10"

	order, err := uc.Checkout(context.Background(), testToken, in)

	assert.NoError(t, err)
	assert.True(t, order.Discount.Equal(d("10")))
	assert.True(t, order.TotalAmount.Equal(d("55.97")))
	assert.NotNil(t, order.CouponCode)
	assert.Equal(t, "SAVE10", *order.CouponCode)
	repos.coupons.AssertCalled(t, "IncrementUsedCount", mock.Anything, int64(3))
}

// 同一ミリ秒の2注文でも注文番号は衝突しない
func TestOrderNumber_UniqueWithinSameMillisecond(t *testing.T) {
	now := time.Now()

	a := newOrderNumber(now)
	b := newOrderNumber(now)

	assert.Regexp(t, `^ORD-\d+-[0-9a-f]{8}$`, a)
	assert.Regexp(t, `^ORD-\d+-[0-9a-f]{8}$`, b)
	assert.NotEqual(t, a, b)
}

// 作成した注文をIDで読み返すと全フィールドが一致する
func TestCheckout_OrderReadBackMatches(t *testing.T) {
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	coupons := new(CouponRepoMock)
	shipping := new(ShippingRepoMock)
	store := newOrderStoreFake()
	tx := &txManagerFake{repos: &txReposFake{
		orders:   store,
		carts:    carts,
		coupons:  coupons,
		products: products,
		shipping: shipping,
	}}
	uc := NewCheckoutUsecase(tx, okValidator{}, &capturePublisher{})

	carts.On("ListByToken", mock.Anything, testToken).Return([]model.CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Cuddly Brown Bear", Price: d("29.99"),
	}, nil)
	products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{
		ID: 2, Name: "Fluffy White Rabbit", Price: d("24.99"),
	}, nil)
	coupons.On("FindByCode", mock.Anything, "SAVE10").Return(model.Coupon{
		ID: 3, Code: "SAVE10", DiscountType: model.DiscountTypeFixed, DiscountValue: d("10"), IsActive: true,
	}, nil)
	coupons.On("IncrementUsedCount", mock.Anything, int64(3)).Return(nil)
	shipping.On("FindByID", mock.Anything, int64(1)).Return(model.ShippingOption{
		ID: 1, Name: "Standard Shipping", Cost: d("5.99"), IsActive: true,
	}, nil)
	carts.On("Clear", mock.Anything, testToken).Return(nil)

	in := checkoutInput()
	in.CouponCode = "SAVE10"

	created, err := uc.Checkout(context.Background(), testToken, in)
	assert.NoError(t, err)

	fetched, err := NewAdminOrderUsecase(store).Get(context.Background(), created.ID)
	assert.NoError(t, err)

	//明細・金額・クーポンまで丸ごと同じ
	assert.Equal(t, created, fetched)
	assert.Equal(t, []string{"Cuddly Brown Bear (x2)", "Fluffy White Rabbit (x1)"}, fetched.Items)
	assert.True(t, fetched.Subtotal.Equal(d("84.97")))
	assert.True(t, fetched.Discount.Equal(d("10")))
	assert.True(t, fetched.TotalAmount.Equal(d("80.96")))
	assert.NotNil(t, fetched.CouponCode)
	assert.Equal(t, "SAVE10", *fetched.CouponCode)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	repos, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, okValidator{}, pub)

	repos.carts.On("ListByToken", mock.Anything, testToken).Return([]model.CartItem{}, nil)

	_, err := uc.Checkout(context.Background(), testToken, checkoutInput())

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "cart is empty", he.Message)
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, pub.published)
}

func TestCheckout_ValidationErrorCarriesFields(t *testing.T) {
	_, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, fieldsValidatorStub{fields: map[string]string{
		"email": "Invalid email",
	}}, pub)

	_, err := uc.Checkout(context.Background(), testToken, CheckoutInput{})

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Invalid email", ve.Fields["email"])
}

// 注文作成に失敗したらカートは消さない（txごとrollback）
func TestCheckout_OrderCreateFailureKeepsCart(t *testing.T) {
	repos, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, okValidator{}, pub)

	stubCartWithBear(repos)
	repos.shipping.On("FindByID", mock.Anything, int64(1)).Return(model.ShippingOption{
		ID: 1, Name: "Standard Shipping", Cost: d("5.99"), IsActive: true,
	}, nil)
	repos.orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Return(model.Order{}, errors.New("insert failed"))

	_, err := uc.Checkout(context.Background(), testToken, checkoutInput())

	assert.Error(t, err)
	repos.carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	assert.Empty(t, pub.published)
}

func TestCheckout_IneligibleShippingRejected(t *testing.T) {
	repos, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, okValidator{}, pub)

	stubCartWithBear(repos)
	//小計59.98では100ドル以上の配送は選べない
	repos.shipping.On("FindByID", mock.Anything, int64(1)).Return(model.ShippingOption{
		ID: 1, Name: "Free Shipping", Cost: d("0"), MinOrderAmount: dp("100"), IsActive: true,
	}, nil)

	_, err := uc.Checkout(context.Background(), testToken, checkoutInput())

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, "selected shipping option is not available for this order", he.Message)
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_ExpiredCouponRejected(t *testing.T) {
	repos, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, okValidator{}, pub)

	stubCartWithBear(repos)
	past := time.Now().Add(-24 * time.Hour)
	repos.coupons.On("FindByCode", mock.Anything, "OLD").Return(model.Coupon{
		Code:          "OLD",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: d("10"),
		ValidUntil:    &past,
		IsActive:      true,
	}, nil)

	in := checkoutInput()
	in.CouponCode = "OLD"

	_, err := uc.Checkout(context.Background(), testToken, in)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, "coupon has expired", he.Message)
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_UnknownCouponRejected(t *testing.T) {
	repos, tx, pub := newCheckoutFixture()
	uc := NewCheckoutUsecase(tx, okValidator{}, pub)

	stubCartWithBear(repos)
	repos.coupons.On("FindByCode", mock.Anything, "NOPE").Return(model.Coupon{}, repo.ErrNotFound)

	in := checkoutInput()
	in.CouponCode = "NOPE"

	_, err := uc.Checkout(context.Background(), testToken, in)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid coupon code", he.Message)
}
