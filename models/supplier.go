package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}
