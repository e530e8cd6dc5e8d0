package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sajilo-inventory/cart"
	"sajilo-inventory/utils"
)

func BeginPurchase(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	w := carts.Begin(userID, cart.KindPurchase)
	utils.Success(c, "purchase started", gin.H{"order_id": w.ID})
}

// AddPurchaseLine puts a product into the session's purchase cart. The
// unit cost may be set per line; it defaults to the catalog price and is
// not bounded by it.
func AddPurchaseLine(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var input struct {
		ProductID uint     `json:"product_id" binding:"required"`
		Quantity  int      `json:"quantity" binding:"required"`
		UnitCost  *float64 `json:"unit_cost"`
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

	unitCost := p.Price
	if input.UnitCost != nil {
		if *input.UnitCost <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unit_cost must be greater than zero"})
			return
		}
		unitCost = *input.UnitCost
	}

	w := carts.Get(userID, cart.KindPurchase)
	if err := w.AddLine(p, input.Quantity, unitCost); err != nil {
		respondErr(c, err)
		return
	}
	utils.Success(c, "line added", gin.H{
		"order_id": w.ID,
		"lines":    w.Lines(),
		"total":    w.Total(),
	})
}

func GetPurchaseCart(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	w := carts.Get(userID, cart.KindPurchase)
	c.JSON(http.StatusOK, gin.H{
		"order_id": w.ID,
		"lines":    w.Lines(),
		"total":    w.Total(),
	})
}

func ClearPurchaseCart(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	carts.Get(userID, cart.KindPurchase).Clear()
	utils.Success(c, "cart cleared", nil)
}

func CommitPurchase(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var input struct {
		SupplierID uint `json:"supplier_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	w := carts.Get(userID, cart.KindPurchase)
	purchase, err := engine.CommitPurchase(c.Request.Context(), input.SupplierID, w)
	if err != nil {
		respondErr(c, err)
		return
	}
	utils.Created(c, "purchase completed", purchase)
}

func GetAllPurchases(c *gin.Context) {
	history, err := dashboard.PurchaseHistory(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": history})
}
