package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category         string          `gorm:"type:varchar(100);index" json:"category"`
	AgeGroup         string          `gorm:"type:varchar(50)" json:"age_group"`
	Material         string          `gorm:"type:varchar(255)" json:"material"`
	Size             string          `gorm:"type:varchar(50)" json:"size"`
	Images           []string        `gorm:"type:jsonb;serializer:json" json:"images"`
	Features         []string        `gorm:"type:jsonb;serializer:json" json:"features"`
	CareInstructions string          `gorm:"type:text" json:"care_instructions"`
	CharacterStory   string          `gorm:"type:text" json:"character_story"`
	Badge            string          `gorm:"type:varchar(50)" json:"badge,omitempty"`
	CreatedAt        time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}
