package models

import "time"

// Sale dan SaleItem adalah ledger records: created once by a successful
// commit, never updated or deleted afterwards.

type Sale struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       time.Time `gorm:"index" json:"date"`
	CustomerID uint      `json:"customer_id"`
	Customer   Customer  `json:"customer"`
	Total      float64   `json:"total"` // always equals sum of item line totals

	Items []SaleItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

type SaleItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SaleID    uint    `gorm:"index" json:"sale_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	// unit price frozen at commit time; later catalog price changes
	// never touch this value
	PriceAtSale float64 `json:"price_at_sale"`
}
