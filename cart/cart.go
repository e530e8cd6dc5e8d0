package cart

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"sajilo-inventory/models"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Kind string

const (
	KindSale     Kind = "sale"
	KindPurchase Kind = "purchase"
)

// Line is one (product, quantity, frozen unit price) entry of a working
// order. LineTotal is kept recomputed on every merge.
type Line struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// WorkingOrder is the session-owned, in-memory accumulation of line items
// for a sale or purchase that has not been committed yet. It is never
// persisted and never shared across sessions.
type WorkingOrder struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	mu    sync.Mutex
	lines []Line
}

func New(kind Kind) *WorkingOrder {
	return &WorkingOrder{ID: uuid.NewString(), Kind: kind}
}

// AddLine merges qty of p into the order at the given unit price. A line
// for the same product is merged (quantities summed), never duplicated.
// For sale orders the cumulative quantity may not exceed the product's
// current stock on hand; purchase orders have no ceiling.
func (w *WorkingOrder) AddLine(p *models.Product, qty int, unitPrice float64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	existing := 0
	idx := -1
	for i, ln := range w.lines {
		if ln.ProductID == p.ID {
			existing = ln.Quantity
			idx = i
			break
		}
	}

	if w.Kind == KindSale && existing+qty > p.Quantity {
		return ErrInsufficientStock
	}

	if idx >= 0 {
		w.lines[idx].Quantity += qty
		w.lines[idx].LineTotal = float64(w.lines[idx].Quantity) * w.lines[idx].UnitPrice
		return nil
	}

	w.lines = append(w.lines, Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		LineTotal:   float64(qty) * unitPrice,
	})
	return nil
}

// Lines returns a copy, in the order lines were first added.
func (w *WorkingOrder) Lines() []Line {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Line, len(w.lines))
	copy(out, w.lines)
	return out
}

func (w *WorkingOrder) Total() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	var total float64
	for _, ln := range w.lines {
		total += ln.LineTotal
	}
	return total
}

func (w *WorkingOrder) Empty() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.lines) == 0
}

func (w *WorkingOrder) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = nil
}
