package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`

	// optional association, join table customer_products
	Products []Product `json:"products" gorm:"many2many:customer_products"`
}
