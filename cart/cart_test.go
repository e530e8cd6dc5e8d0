package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sajilo-inventory/models"
)

func product(id uint, name string, price float64, qty int) *models.Product {
	return &models.Product{
		Model:    gorm.Model{ID: id},
		Name:     name,
		Price:    price,
		Quantity: qty,
	}
}

func TestAddLineMergesSameProduct(t *testing.T) {
	w := New(KindSale)
	p := product(1, "Intel Core i5-10400", 5.0, 10)

	require.NoError(t, w.AddLine(p, 2, p.Price))
	require.NoError(t, w.AddLine(p, 3, p.Price))

	lines := w.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 25.0, lines[0].LineTotal)
	assert.Equal(t, 25.0, w.Total())
}

func TestAddLineInvalidQuantity(t *testing.T) {
	w := New(KindSale)
	p := product(1, "RAM", 80.0, 10)

	for _, qty := range []int{0, -1} {
		err := w.AddLine(p, qty, p.Price)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.True(t, w.Empty())
}

func TestAddLineSaleStockCeiling(t *testing.T) {
	w := New(KindSale)
	p := product(2, "Scarce", 10.0, 2)

	err := w.AddLine(p, 5, p.Price)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.True(t, w.Empty(), "failed add must not leave a line behind")

	// the ceiling is cumulative across merges
	require.NoError(t, w.AddLine(p, 2, p.Price))
	err = w.AddLine(p, 1, p.Price)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Len(t, w.Lines(), 1)
	assert.Equal(t, 2, w.Lines()[0].Quantity)
}

func TestAddLinePurchaseHasNoCeiling(t *testing.T) {
	w := New(KindPurchase)
	p := product(3, "Restock me", 10.0, 2)

	require.NoError(t, w.AddLine(p, 50, 7.5))
	assert.Equal(t, 375.0, w.Total())
}

func TestEmptyOrderTotalIsZero(t *testing.T) {
	w := New(KindSale)
	assert.Equal(t, 0.0, w.Total())
	assert.True(t, w.Empty())
}

func TestClear(t *testing.T) {
	w := New(KindSale)
	p := product(4, "Thing", 1.0, 5)
	require.NoError(t, w.AddLine(p, 1, p.Price))

	w.Clear()
	assert.True(t, w.Empty())
	assert.Equal(t, 0.0, w.Total())
}

func TestLinesPreserveInsertionOrder(t *testing.T) {
	w := New(KindSale)
	a := product(1, "A", 1.0, 10)
	b := product(2, "B", 2.0, 10)
	c := product(3, "C", 3.0, 10)

	require.NoError(t, w.AddLine(b, 1, b.Price))
	require.NoError(t, w.AddLine(a, 1, a.Price))
	require.NoError(t, w.AddLine(c, 1, c.Price))
	require.NoError(t, w.AddLine(b, 1, b.Price))

	lines := w.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, uint(2), lines[0].ProductID)
	assert.Equal(t, uint(1), lines[1].ProductID)
	assert.Equal(t, uint(3), lines[2].ProductID)
}

func TestManagerSessionIsolation(t *testing.T) {
	m := NewManager()
	p := product(1, "Shared", 5.0, 10)

	w1 := m.Get(1, KindSale)
	require.NoError(t, w1.AddLine(p, 2, p.Price))

	// another session sees its own empty order
	w2 := m.Get(2, KindSale)
	assert.True(t, w2.Empty())

	// sale and purchase orders of one session are independent
	wp := m.Get(1, KindPurchase)
	assert.True(t, wp.Empty())

	// Get returns the same order until Begin replaces it
	assert.Same(t, w1, m.Get(1, KindSale))
	replaced := m.Begin(1, KindSale)
	assert.NotSame(t, w1, replaced)
	assert.True(t, replaced.Empty())
}
