package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// クーポン。Codeは大文字で保存する（照合は大文字小文字なし）。
// UsedCountは記録のみで、UsageLimit超過の拒否はまだ行わない。
type Coupon struct {
	ID            int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string           `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	DiscountType  DiscountType     `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	MinPurchase   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"min_purchase,omitempty"`
	MaxDiscount   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"max_discount,omitempty"`
	ValidFrom     *time.Time       `json:"valid_from,omitempty"`
	ValidUntil    *time.Time       `json:"valid_until,omitempty"`
	UsageLimit    *int64           `json:"usage_limit,omitempty"`
	UsedCount     int64            `gorm:"not null;default:0" json:"used_count"`
	IsActive      bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
