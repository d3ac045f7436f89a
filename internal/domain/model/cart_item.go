package model

import "time"

// ゲストカートの明細
// cart_token + product_id で一意。再追加は数量加算。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartToken string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_token_product" json:"-"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_token_product;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `gorm:"not null" json:"added_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
