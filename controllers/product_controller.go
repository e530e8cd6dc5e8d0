package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sajilo-inventory/service"
	"sajilo-inventory/utils"
)

func CreateProduct(c *gin.Context) {
	var input struct {
		Name       string  `json:"name" binding:"required"`
		CategoryID uint    `json:"category_id" binding:"required"`
		Price      float64 `json:"price" binding:"required"`
		Quantity   int     `json:"quantity"`
		Image      string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	p, err := catalog.CreateProduct(c.Request.Context(), service.ProductInput{
		Name:       input.Name,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		Quantity:   input.Quantity,
		Image:      input.Image,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	utils.Success(c, "product created", p)
}

// GetAllProducts supports ?category_id= and ?in_stock=true filters; the
// sale screen lists in-stock products only, the purchase screen lists all.
func GetAllProducts(c *gin.Context) {
	var f service.ProductFilter
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		f.CategoryID = uint(id)
	}
	f.InStock = c.Query("in_stock") == "true"

	products, err := catalog.ListProducts(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := catalog.GetProduct(c.Request.Context(), uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

// UpdateProductStock is the administrative absolute restock.
func UpdateProductStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := catalog.SetStock(c.Request.Context(), uint(id), *input.Quantity); err != nil {
		respondErr(c, err)
		return
	}
	utils.Success(c, "stock updated", gin.H{"product_id": id, "quantity": *input.Quantity})
}
