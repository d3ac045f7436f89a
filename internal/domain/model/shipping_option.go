package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 配送オプション。min/maxは小計に対する閉区間の適用条件。
type ShippingOption struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string           `gorm:"type:varchar(255);not null" json:"name"`
	Cost           decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"cost"`
	EstimatedDays  string           `gorm:"type:varchar(50)" json:"estimated_days"`
	MinOrderAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"min_order_amount,omitempty"`
	MaxOrderAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"max_order_amount,omitempty"`
	IsActive       bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
