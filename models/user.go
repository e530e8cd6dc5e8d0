package models

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;size:120;not null"`
	Password string `json:"-"` // bcrypt hash
	Role     string `json:"role" gorm:"size:20"`
}
