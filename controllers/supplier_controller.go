package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sajilo-inventory/models"
	"sajilo-inventory/utils"
)

func CreateSupplier(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Contact string `json:"contact" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	supplier := models.Supplier{Name: input.Name, Contact: input.Contact, Email: input.Email}
	if err := db.Create(&supplier).Error; err != nil {
		respondErr(c, err)
		return
	}
	utils.Success(c, "supplier created", supplier)
}

func GetAllSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := db.Order("name ASC").Find(&suppliers).Error; err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": suppliers})
}

func GetSupplierByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var supplier models.Supplier
	if err := db.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": supplier})
}
