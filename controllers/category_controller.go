package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sajilo-inventory/utils"
)

func CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cat, err := catalog.CreateCategory(c.Request.Context(), input.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	utils.Success(c, "category created", cat)
}

func GetAllCategories(c *gin.Context) {
	cats, err := catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cats})
}
