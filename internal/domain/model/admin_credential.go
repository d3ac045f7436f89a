package model

import "time"

// 管理者の共有シークレット（bcryptハッシュで1行だけ持つ）
type AdminCredential struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
