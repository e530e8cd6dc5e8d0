package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sajilo-inventory/cart"
	"sajilo-inventory/utils"
)

// BeginSale starts a fresh sale working order for this session,
// discarding any half-built one.
func BeginSale(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	w := carts.Begin(userID, cart.KindSale)
	utils.Success(c, "sale started", gin.H{"order_id": w.ID})
}

// AddSaleLine puts a product into the session's sale cart at the current
// catalog price. A line for the same product merges instead of
// duplicating.
func AddSaleLine(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var input struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	p, err := catalog.GetProduct(c.Request.Context(), input.ProductID)
	if err != nil {
		respondErr(c, err)
		return
	}

	w := carts.Get(userID, cart.KindSale)
	if err := w.AddLine(p, input.Quantity, p.Price); err != nil {
		respondErr(c, err)
		return
	}
	utils.Success(c, "line added", gin.H{
		"order_id": w.ID,
		"lines":    w.Lines(),
		"total":    w.Total(),
	})
}

func GetSaleCart(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	w := carts.Get(userID, cart.KindSale)
	c.JSON(http.StatusOK, gin.H{
		"order_id": w.ID,
		"lines":    w.Lines(),
		"total":    w.Total(),
	})
}

func ClearSaleCart(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	carts.Get(userID, cart.KindSale).Clear()
	utils.Success(c, "cart cleared", nil)
}

// CommitSale atomically persists the cart as a sale and decrements stock.
// On any failure nothing is written and the cart is kept.
func CommitSale(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var input struct {
		CustomerID uint `json:"customer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	w := carts.Get(userID, cart.KindSale)
	sale, err := engine.CommitSale(c.Request.Context(), input.CustomerID, w)
	if err != nil {
		respondErr(c, err)
		return
	}
	utils.Created(c, "sale completed", sale)
}

func GetAllSales(c *gin.Context) {
	history, err := dashboard.SalesHistory(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": history})
}
