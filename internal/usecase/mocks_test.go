package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"cuddlecrafts/internal/domain/model"
	repo "cuddlecrafts/internal/repository"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByToken(ctx context.Context, token string) ([]model.CartItem, error) {
	args := m.Called(ctx, token)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) FindByTokenAndProduct(ctx context.Context, token string, productID int64) (model.CartItem, error) {
	args := m.Called(ctx, token, productID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartRepoMock) AddQuantity(ctx context.Context, token string, productID int64, qty int64, addedAt time.Time) error {
	args := m.Called(ctx, token, productID, qty, addedAt)
	return args.Error(0)
}

func (m *CartRepoMock) SetQuantity(ctx context.Context, token string, productID int64, qty int64) error {
	args := m.Called(ctx, token, productID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) Remove(ctx context.Context, token string, productID int64) error {
	args := m.Called(ctx, token, productID)
	return args.Error(0)
}

func (m *CartRepoMock) Clear(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type CouponRepoMock struct{ mock.Mock }

func (m *CouponRepoMock) List(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Coupon)
	return items, args.Error(1)
}

func (m *CouponRepoMock) FindByID(ctx context.Context, id int64) (model.Coupon, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Coupon)
	return c, args.Error(1)
}

func (m *CouponRepoMock) FindByCode(ctx context.Context, code string) (model.Coupon, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(model.Coupon)
	return c, args.Error(1)
}

func (m *CouponRepoMock) Create(ctx context.Context, c model.Coupon) (model.Coupon, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Coupon)
	return created, args.Error(1)
}

func (m *CouponRepoMock) Update(ctx context.Context, c model.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CouponRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CouponRepoMock) IncrementUsedCount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ShippingRepoMock struct{ mock.Mock }

func (m *ShippingRepoMock) List(ctx context.Context) ([]model.ShippingOption, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ShippingOption)
	return items, args.Error(1)
}

func (m *ShippingRepoMock) FindByID(ctx context.Context, id int64) (model.ShippingOption, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.ShippingOption)
	return s, args.Error(1)
}

func (m *ShippingRepoMock) Create(ctx context.Context, s model.ShippingOption) (model.ShippingOption, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.ShippingOption)
	return created, args.Error(1)
}

func (m *ShippingRepoMock) Update(ctx context.Context, s model.ShippingOption) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *ShippingRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	//入力をそのまま返したいテストのためにfuncも受ける
	if fn, ok := args.Get(0).(func(model.Order) model.Order); ok {
		return fn(order), args.Error(1)
	}
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Update(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type AdminCredRepoMock struct{ mock.Mock }

func (m *AdminCredRepoMock) GetHash(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *AdminCredRepoMock) EnsureExists(ctx context.Context, hash string) error {
	args := m.Called(ctx, hash)
	return args.Error(0)
}

func (m *AdminCredRepoMock) UpdateHash(ctx context.Context, hash string) error {
	args := m.Called(ctx, hash)
	return args.Error(0)
}

// txReposStub はmockした各リポジトリをそのまま配る
type txReposStub struct {
	orders   *OrderRepoMock
	carts    *CartRepoMock
	coupons  *CouponRepoMock
	products *ProductRepoMock
	shipping *ShippingRepoMock
}

func (s *txReposStub) Orders() repo.OrderRepository            { return s.orders }
func (s *txReposStub) Carts() repo.CartRepository              { return s.carts }
func (s *txReposStub) Coupons() repo.CouponRepository          { return s.coupons }
func (s *txReposStub) Products() repo.ProductRepository        { return s.products }
func (s *txReposStub) Shipping() repo.ShippingOptionRepository { return s.shipping }

// txManagerStub はfnをそのまま実行するだけ。fnがエラーならrollback相当。
type txManagerStub struct {
	repos *txReposStub
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}

// orderStoreFake は作成した注文を保持して読み返せるin-memory実装
type orderStoreFake struct {
	seq    int64
	orders map[int64]model.Order
}

func newOrderStoreFake() *orderStoreFake {
	return &orderStoreFake{orders: map[int64]model.Order{}}
}

func (s *orderStoreFake) Create(ctx context.Context, order model.Order) (model.Order, error) {
	s.seq++
	order.ID = s.seq
	s.orders[order.ID] = order
	return order, nil
}

func (s *orderStoreFake) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (s *orderStoreFake) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	items := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		items = append(items, o)
	}
	return items, int64(len(items)), nil
}

func (s *orderStoreFake) Update(ctx context.Context, order model.Order) error {
	if _, ok := s.orders[order.ID]; !ok {
		return repo.ErrNotFound
	}
	s.orders[order.ID] = order
	return nil
}

func (s *orderStoreFake) Delete(ctx context.Context, orderID int64) error {
	if _, ok := s.orders[orderID]; !ok {
		return repo.ErrNotFound
	}
	delete(s.orders, orderID)
	return nil
}

// txReposFake はinterfaceのまま差し込めるTxRepos（fakeとmockの混在用）
type txReposFake struct {
	orders   repo.OrderRepository
	carts    repo.CartRepository
	coupons  repo.CouponRepository
	products repo.ProductRepository
	shipping repo.ShippingOptionRepository
}

func (s *txReposFake) Orders() repo.OrderRepository            { return s.orders }
func (s *txReposFake) Carts() repo.CartRepository              { return s.carts }
func (s *txReposFake) Coupons() repo.CouponRepository          { return s.coupons }
func (s *txReposFake) Products() repo.ProductRepository        { return s.products }
func (s *txReposFake) Shipping() repo.ShippingOptionRepository { return s.shipping }

type txManagerFake struct {
	repos *txReposFake
}

func (t *txManagerFake) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}

// okValidator は常に通す
type okValidator struct{}

func (okValidator) Validate(in CheckoutInput) map[string]string { return nil }

// fieldsValidatorStub は固定のエラーを返す
type fieldsValidatorStub struct {
	fields map[string]string
}

func (v fieldsValidatorStub) Validate(in CheckoutInput) map[string]string { return v.fields }

// capturePublisher は発行された注文を覚える
type capturePublisher struct {
	published []model.Order
}

func (p *capturePublisher) OrderPlaced(order model.Order) {
	p.published = append(p.published, order)
}
