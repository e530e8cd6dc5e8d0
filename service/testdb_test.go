package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sajilo-inventory/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Supplier{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Purchase{},
		&models.PurchaseItem{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	cat := models.Category{Name: name}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, qty int) models.Product {
	t.Helper()
	cat := seedCategory(t, db, "cat for "+name)
	p := models.Product{Name: name, CategoryID: cat.ID, Price: price, Quantity: qty}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	cu := models.Customer{Name: name, Contact: "9800000000", Email: name + "@example.com"}
	require.NoError(t, db.Create(&cu).Error)
	return cu
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) models.Supplier {
	t.Helper()
	su := models.Supplier{Name: name, Contact: "9811111111", Email: name + "@example.com"}
	require.NoError(t, db.Create(&su).Error)
	return su
}

func productQuantity(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, id).Error)
	return p.Quantity
}
