package db

import (
	"context"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/shopspring/decimal"
)

// SeedCatalog 商品表為空時寫入預設菜單與區域
// 冪等性
func (d *DbDao) SeedCatalog(ctx context.Context) error {
	var count int64
	if err := d.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []model.Product{
		{Name: "Stadium Burger", Description: "Classic beef burger with cheese and lettuce", Price: decimal.New(850, -2), Category: model.CategoryFood, ImageUrl: "https://placehold.co/600x400/orange/white?text=Burger", IsAvailable: true},
		{Name: "Hot Dog", Description: "Grilled jumbo hot dog with mustard and onions", Price: decimal.New(600, -2), Category: model.CategoryFood, ImageUrl: "https://placehold.co/600x400/red/white?text=Hot+Dog", IsAvailable: true},
		{Name: "Fries", Description: "Crispy salted fries", Price: decimal.New(450, -2), Category: model.CategorySnack, ImageUrl: "https://placehold.co/600x400/yellow/black?text=Fries", IsAvailable: true},
		{Name: "Soda (Large)", Description: "Cola, Diet, or Lemon-Lime", Price: decimal.New(500, -2), Category: model.CategoryDrink, ImageUrl: "https://placehold.co/600x400/black/white?text=Soda", IsAvailable: true},
		{Name: "Beer", Description: "Premium lager 500ml", Price: decimal.New(750, -2), Category: model.CategoryDrink, ImageUrl: "https://placehold.co/600x400/brown/white?text=Beer", IsAvailable: true},
		{Name: "Nachos", Description: "Tortilla chips with cheese sauce and jalapenos", Price: decimal.New(650, -2), Category: model.CategorySnack, ImageUrl: "https://placehold.co/600x400/orange/black?text=Nachos", IsAvailable: true},
	}
	if err := d.WithContext(ctx).Create(&products).Error; err != nil {
		return err
	}

	sections := []model.Section{
		{Name: "Section A (Home)", IsDeliveryAvailable: true},
		{Name: "Section B (Away)", IsDeliveryAvailable: true},
		{Name: "Section C (VIP)", IsDeliveryAvailable: true},
		{Name: "Section D (Family)", IsDeliveryAvailable: false},
	}
	return d.WithContext(ctx).Create(&sections).Error
}
