package routes

import (
	"sajilo-inventory/controllers"
	"sajilo-inventory/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/login", controllers.Login)

		// ================= AUTHENTICATED =================
		auth := api.Group("/", middlewares.AuthMiddleware())
		{
			auth.GET("/dashboard", controllers.GetDashboard)

			auth.GET("/categories", controllers.GetAllCategories)
			auth.GET("/products", controllers.GetAllProducts)
			auth.GET("/products/:id", controllers.GetProductByID)
			auth.GET("/customers", controllers.GetAllCustomers)
			auth.GET("/customers/:id", controllers.GetCustomerByID)
			auth.GET("/suppliers", controllers.GetAllSuppliers)
			auth.GET("/suppliers/:id", controllers.GetSupplierByID)

			sale := auth.Group("/sale")
			{
				sale.POST("/begin", controllers.BeginSale)
				sale.POST("/lines", controllers.AddSaleLine)
				sale.DELETE("/lines", controllers.ClearSaleCart)
				sale.GET("/cart", controllers.GetSaleCart)
				sale.POST("/commit", controllers.CommitSale)
			}
			auth.GET("/sales", controllers.GetAllSales)

			purchase := auth.Group("/purchase")
			{
				purchase.POST("/begin", controllers.BeginPurchase)
				purchase.POST("/lines", controllers.AddPurchaseLine)
				purchase.DELETE("/lines", controllers.ClearPurchaseCart)
				purchase.GET("/cart", controllers.GetPurchaseCart)
				purchase.POST("/commit", controllers.CommitPurchase)
			}
			auth.GET("/purchases", controllers.GetAllPurchases)
		}

		// ================= ADMIN =================
		admin := api.Group("/admin", middlewares.AuthMiddleware(), middlewares.AdminOnly())
		{
			admin.POST("/register", controllers.Register)

			admin.POST("/categories", controllers.CreateCategory)
			admin.POST("/products", controllers.CreateProduct)
			admin.PUT("/products/:id/stock", controllers.UpdateProductStock)
			admin.POST("/customers", controllers.CreateCustomer)
			admin.POST("/suppliers", controllers.CreateSupplier)

			reports := admin.Group("/reports")
			{
				reports.GET("/stock.xlsx", controllers.ExportStockReport)
				reports.GET("/sales.xlsx", controllers.ExportSalesReport)
				reports.GET("/purchases.xlsx", controllers.ExportPurchasesReport)
			}
		}
	}
}
