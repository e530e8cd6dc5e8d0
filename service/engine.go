package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sajilo-inventory/cart"
	"sajilo-inventory/metrics"
	"sajilo-inventory/models"
)

// Engine turns a working order into a persisted sale or purchase while
// mutating stock. A commit either fully succeeds (header + items written,
// stock adjusted, order cleared) or leaves every store untouched.
type Engine struct{ db *gorm.DB }

func NewEngine(db *gorm.DB) *Engine { return &Engine{db: db} }

const maxCommitRetries = 3

func (e *Engine) CommitSale(ctx context.Context, customerID uint, order *cart.WorkingOrder) (*models.Sale, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: working order is empty", ErrInvalidRequest)
	}
	// Snapshot once; the session may still be mutating the live order and
	// the persisted header must agree with the items written from it.
	lines := order.Lines()
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: working order is empty", ErrInvalidRequest)
	}
	if customerID == 0 {
		return nil, fmt.Errorf("%w: customer is required", ErrInvalidRequest)
	}
	var cnt int64
	if err := e.db.WithContext(ctx).Model(&models.Customer{}).
		Where("id = ?", customerID).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		return nil, fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
	}

	var lastErr error
	for range maxCommitRetries {
		s := models.Sale{
			Date:       time.Now(),
			CustomerID: customerID,
			Total:      linesTotal(lines),
		}
		for _, ln := range lines {
			s.Items = append(s.Items, models.SaleItem{
				ProductID:   ln.ProductID,
				Quantity:    ln.Quantity,
				PriceAtSale: ln.UnitPrice,
			})
		}

		lastErr = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// Stock may have moved since the lines were added; check the
			// whole order before writing anything.
			if err := checkStock(tx, lines); err != nil {
				return err
			}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
			for _, ln := range lines {
				if err := AdjustStock(tx, ln.ProductID, -ln.Quantity); err != nil {
					return err
				}
			}
			return nil
		})

		if lastErr == nil {
			order.Clear()
			metrics.SalesCommitted.Inc()
			return &s, nil
		}
		if isSerializationFailure(lastErr) {
			metrics.CommitConflicts.Inc()
			continue
		}
		return nil, lastErr
	}

	metrics.CommitConflicts.Inc()
	return nil, fmt.Errorf("%w: %v", ErrConflict, lastErr)
}

func (e *Engine) CommitPurchase(ctx context.Context, supplierID uint, order *cart.WorkingOrder) (*models.Purchase, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: working order is empty", ErrInvalidRequest)
	}
	lines := order.Lines()
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: working order is empty", ErrInvalidRequest)
	}
	if supplierID == 0 {
		return nil, fmt.Errorf("%w: supplier is required", ErrInvalidRequest)
	}
	var cnt int64
	if err := e.db.WithContext(ctx).Model(&models.Supplier{}).
		Where("id = ?", supplierID).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		return nil, fmt.Errorf("%w: supplier %d", ErrNotFound, supplierID)
	}

	var lastErr error
	for range maxCommitRetries {
		p := models.Purchase{
			Date:       time.Now(),
			SupplierID: supplierID,
			Total:      linesTotal(lines),
		}
		for _, ln := range lines {
			p.Items = append(p.Items, models.PurchaseItem{
				ProductID:       ln.ProductID,
				Quantity:        ln.Quantity,
				PriceAtPurchase: ln.UnitPrice,
			})
		}

		lastErr = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			// Incoming stock has no upper bound; the adjust still runs
			// inside the transaction for record/stock consistency.
			for _, ln := range lines {
				if err := AdjustStock(tx, ln.ProductID, ln.Quantity); err != nil {
					return err
				}
			}
			return nil
		})

		if lastErr == nil {
			order.Clear()
			metrics.PurchasesCommitted.Inc()
			return &p, nil
		}
		if isSerializationFailure(lastErr) {
			metrics.CommitConflicts.Inc()
			continue
		}
		return nil, lastErr
	}

	metrics.CommitConflicts.Inc()
	return nil, fmt.Errorf("%w: %v", ErrConflict, lastErr)
}

func linesTotal(lines []cart.Line) float64 {
	var total float64
	for _, ln := range lines {
		total += ln.LineTotal
	}
	return total
}

// checkStock re-validates every sale line against current quantities. The
// guarded update in AdjustStock remains the enforcement under concurrency;
// this pass rejects a stale order before any row is written.
func checkStock(tx *gorm.DB, lines []cart.Line) error {
	for _, ln := range lines {
		var p models.Product
		if err := tx.Select("id", "quantity").First(&p, ln.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d", ErrNotFound, ln.ProductID)
			}
			return err
		}
		if ln.Quantity > p.Quantity {
			return fmt.Errorf("%w: product %d (stock %d, requested %d)",
				ErrInsufficientStock, ln.ProductID, p.Quantity, ln.Quantity)
		}
	}
	return nil
}
