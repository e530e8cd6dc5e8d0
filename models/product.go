package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name       string   `json:"name" gorm:"size:180;not null"`
	CategoryID uint     `json:"category_id"` // foreign key ke Category
	Category   Category `json:"category"`    // preload
	Price      float64  `json:"price"`
	Quantity   int      `json:"quantity"` // stock on hand, mutated only via service.AdjustStock
	Image      string   `json:"image"`    // optional image URL
}
