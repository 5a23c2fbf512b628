package models

import (
	"github.com/shopspring/decimal"
)

// Dish is a single menu position. Price is stored as decimal(10,2).
type Dish struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"not null" validate:"required,min=1,max=100"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID uint            `json:"category_id" gorm:"not null" validate:"required"`
	Category   Category        `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (d *Dish) TableName() string {
	return "dishes"
}
