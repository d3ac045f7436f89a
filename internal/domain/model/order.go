package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 注文。Itemsは "name (xQty)" 形式の明細文字列。
type Order struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	CustomerName   string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email          string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string          `gorm:"type:varchar(50);not null" json:"phone"`
	Address        string          `gorm:"type:text;not null" json:"address"`
	Items          []string        `gorm:"type:jsonb;serializer:json" json:"items"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping_cost"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingMethod string          `gorm:"type:varchar(255)" json:"shipping_method"`
	Status         OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentMethod  string          `gorm:"type:varchar(50)" json:"payment_method"`
	CouponCode     *string         `gorm:"type:varchar(50)" json:"coupon_code,omitempty"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
