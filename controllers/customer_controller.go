package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sajilo-inventory/models"
	"sajilo-inventory/utils"
)

func CreateCustomer(c *gin.Context) {
	var input struct {
		Name       string `json:"name" binding:"required"`
		Contact    string `json:"contact" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		ProductIDs []uint `json:"product_ids"` // optional association
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	customer := models.Customer{
		Name:    input.Name,
		Contact: input.Contact,
		Email:   input.Email,
	}
	if len(input.ProductIDs) > 0 {
		var products []models.Product
		if err := db.Find(&products, input.ProductIDs).Error; err != nil {
			respondErr(c, err)
			return
		}
		if len(products) != len(input.ProductIDs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown product id in association"})
			return
		}
		customer.Products = products
	}

	if err := db.Create(&customer).Error; err != nil {
		respondErr(c, err)
		return
	}
	utils.Success(c, "customer created", customer)
}

type customerRow struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Contact            string   `json:"contact"`
	Email              string   `json:"email"`
	AssociatedProducts []string `json:"associated_products"`
}

// GetAllCustomers lists customers with the names of their associated
// products folded in application code.
func GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := db.Preload("Products").Order("name ASC").Find(&customers).Error; err != nil {
		respondErr(c, err)
		return
	}

	rows := make([]customerRow, 0, len(customers))
	for _, cu := range customers {
		row := customerRow{ID: cu.ID, Name: cu.Name, Contact: cu.Contact, Email: cu.Email}
		for _, p := range cu.Products {
			row.AssociatedProducts = append(row.AssociatedProducts, p.Name)
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var customer models.Customer
	if err := db.Preload("Products").First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customer})
}
