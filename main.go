package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sajilo-inventory/cart"
	"sajilo-inventory/config"
	"sajilo-inventory/controllers"
	"sajilo-inventory/models"
	"sajilo-inventory/routes"
	"sajilo-inventory/utils"
)

func main() {
	config.Load()
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Supplier{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Purchase{},
		&models.PurchaseItem{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := config.Seed(config.DB); err != nil {
		log.Fatalf("bootstrap seed failed: %v", err)
	}

	utils.Secret = []byte(config.C.JWTSecret)

	gin.SetMode(config.C.GinMode)
	r := gin.Default()

	controllers.Init(config.DB, cart.NewManager(), config.C.LowStockThreshold)
	routes.SetupRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
