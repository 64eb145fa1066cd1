package model

import (
	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryFood  ProductCategory = "food"
	CategoryDrink ProductCategory = "drink"
	CategorySnack ProductCategory = "snack"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink, CategorySnack:
		return true
	default:
		return false
	}
}

// Product 除 IsAvailable 外建立後不再異動
type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Description string          `gorm:"not null;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Category    ProductCategory `gorm:"not null;type:varchar(50)" json:"category"`
	ImageUrl    string          `gorm:"not null;type:text" json:"image_url"`
	IsAvailable bool            `gorm:"not null;default:true" json:"is_available"`
}
