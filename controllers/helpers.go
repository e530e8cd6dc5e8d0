package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sajilo-inventory/cart"
	"sajilo-inventory/service"
	"sajilo-inventory/utils"
)

var (
	db        *gorm.DB
	carts     *cart.Manager
	catalog   *service.Catalog
	engine    *service.Engine
	dashboard *service.Dashboard
)

// Init wires the controllers to the shared database handle and the
// session cart manager. Called once from main.
func Init(database *gorm.DB, manager *cart.Manager, lowStockThreshold int) {
	db = database
	carts = manager
	catalog = service.NewCatalog(database)
	engine = service.NewEngine(database)
	dashboard = service.NewDashboard(database, lowStockThreshold)
}

func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("user_id invalid")
	}
	return id, nil
}

// respondErr translates service and cart errors into HTTP statuses.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrInvalidCategory):
		utils.Error(c, http.StatusNotFound, "not found", err)
	case errors.Is(err, service.ErrDuplicateName):
		utils.Error(c, http.StatusConflict, "duplicate name", err)
	case errors.Is(err, service.ErrConflict):
		utils.Error(c, http.StatusConflict, "commit conflict, please retry", err)
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, cart.ErrInsufficientStock):
		utils.Error(c, http.StatusUnprocessableEntity, "insufficient stock", err)
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrNegativeQuantity),
		errors.Is(err, cart.ErrInvalidQuantity):
		utils.Error(c, http.StatusBadRequest, "invalid request", err)
	default:
		utils.Error(c, http.StatusInternalServerError, "internal error", err)
	}
}
