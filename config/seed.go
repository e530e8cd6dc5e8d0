package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sajilo-inventory/models"
)

// Seed is the explicit bootstrap, safe to run on every start: a default
// admin account plus a starter catalog when the tables are empty.
func Seed(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), 10)
		if err != nil {
			return err
		}
		admin := models.User{Username: "admin", Password: string(hash), Role: models.RoleAdmin}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("seeded default admin user")
	}

	if err := db.Model(&models.Category{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	processor := models.Category{Name: "Processor"}
	ram := models.Category{Name: "RAM Module"}
	if err := db.Create(&processor).Error; err != nil {
		return err
	}
	if err := db.Create(&ram).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Name:       "Intel Core i5-10400",
			CategoryID: processor.ID,
			Price:      250.0,
			Quantity:   10,
			Image:      "https://cdn.sajilo.example/products/i5-10400.jpg",
		},
		{
			Name:       "Adata XPG Gammix D30 8GB DDR4",
			CategoryID: ram.ID,
			Price:      80.0,
			Quantity:   15,
			Image:      "https://cdn.sajilo.example/products/xpg-d30.jpg",
		},
	}
	for _, p := range products {
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	log.Println("seeded starter categories and products")
	return nil
}
