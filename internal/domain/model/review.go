package model

import "time"

// 商品レビュー。ratingは1〜5。
type Review struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    int64     `gorm:"not null;index" json:"product_id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
