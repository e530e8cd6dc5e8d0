package models

import "time"

type Purchase struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       time.Time `gorm:"index" json:"date"`
	SupplierID uint      `json:"supplier_id"`
	Supplier   Supplier  `json:"supplier"`
	Total      float64   `json:"total"`

	Items []PurchaseItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

type PurchaseItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	PurchaseID uint    `gorm:"index" json:"purchase_id"`
	ProductID  uint    `json:"product_id"`
	Product    Product `json:"product"`
	Quantity   int     `json:"quantity"`
	// unit cost as entered on the purchase order, not bound to the
	// catalog price
	PriceAtPurchase float64 `json:"price_at_purchase"`
}
