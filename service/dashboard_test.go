package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sajilo-inventory/models"
)

func TestAmountAggregationsEmptyLedger(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboard(db, 5)
	ctx := context.Background()

	total, err := s.TotalSalesAmount(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	total, err = s.TotalPurchasesAmount(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	total, err = s.SalesForDate(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDayAndMonthRollups(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboard(db, 5)
	ctx := context.Background()

	cu := seedCustomer(t, db, "C1")
	su := seedSupplier(t, db, "S1")

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	twoMonthsAgo := now.AddDate(0, -2, 0)

	for _, sale := range []models.Sale{
		{Date: now, CustomerID: cu.ID, Total: 35},
		{Date: now, CustomerID: cu.ID, Total: 15},
		{Date: yesterday, CustomerID: cu.ID, Total: 100},
		{Date: twoMonthsAgo, CustomerID: cu.ID, Total: 1000},
	} {
		require.NoError(t, db.Create(&sale).Error)
	}
	require.NoError(t, db.Create(&models.Purchase{Date: now, SupplierID: su.ID, Total: 500}).Error)

	got, err := s.SalesForDate(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)

	got, err = s.SalesForDate(ctx, yesterday)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = s.TotalSalesAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1150.0, got)

	got, err = s.SalesForMonth(ctx, twoMonthsAgo.Year(), twoMonthsAgo.Month())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	got, err = s.PurchasesForDate(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got)

	got, err = s.PurchasesForDate(ctx, yesterday)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestLowStockProducts(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboard(db, 5)
	ctx := context.Background()

	cat := seedCategory(t, db, "Things")
	for _, q := range []int{10, 0, 6, 3, 5} {
		require.NoError(t, db.Create(&models.Product{
			Name: "P", CategoryID: cat.ID, Price: 1, Quantity: q,
		}).Error)
	}

	low, err := s.LowStockProducts(ctx, 5)
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, 0, low[0].Quantity)
	assert.Equal(t, 3, low[1].Quantity)
	assert.Equal(t, 5, low[2].Quantity)
}

func TestOverview(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboard(db, 5)
	ctx := context.Background()

	cu := seedCustomer(t, db, "C1")
	seedCustomer(t, db, "C2")
	su := seedSupplier(t, db, "S1")
	seedProduct(t, db, "Nearly out", 5, 2)

	now := time.Now()
	require.NoError(t, db.Create(&models.Sale{Date: now, CustomerID: cu.ID, Total: 35}).Error)
	require.NoError(t, db.Create(&models.Purchase{Date: now, SupplierID: su.ID, Total: 80}).Error)

	o, err := s.Overview(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, o.TotalCustomers)
	assert.EqualValues(t, 1, o.TotalSuppliers)
	assert.Equal(t, 35.0, o.TotalSales)
	assert.Equal(t, 80.0, o.TotalPurchases)
	assert.Equal(t, 35.0, o.SalesToday)
	assert.Equal(t, 80.0, o.PurchasesToday)
	assert.Equal(t, 35.0, o.SalesThisMonth)
	assert.Equal(t, 80.0, o.PurchasesThisMonth)
	require.Len(t, o.LowStock, 1)
	assert.Equal(t, "Nearly out", o.LowStock[0].Name)
}

func TestSalesHistoryFold(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboard(db, 5)
	ctx := context.Background()

	cu := seedCustomer(t, db, "Ram Shrestha")
	a := seedProduct(t, db, "Product A", 5, 100)
	b := seedProduct(t, db, "Product B", 3, 100)

	sale := models.Sale{
		Date:       time.Now(),
		CustomerID: cu.ID,
		Total:      19,
		Items: []models.SaleItem{
			{ProductID: a.ID, Quantity: 2, PriceAtSale: 5},
			{ProductID: b.ID, Quantity: 3, PriceAtSale: 3},
		},
	}
	require.NoError(t, db.Create(&sale).Error)

	history, err := s.SalesHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	tr := history[0]
	assert.Equal(t, sale.ID, tr.ID)
	assert.Equal(t, "Ram Shrestha", tr.Counterparty)
	assert.Equal(t, 19.0, tr.Total)
	require.Len(t, tr.Lines, 2)
	assert.Equal(t, "Product A", tr.Lines[0].ProductName)
	assert.Equal(t, 2, tr.Lines[0].Quantity)
	assert.Equal(t, "Product B", tr.Lines[1].ProductName)
}

func TestPurchaseHistoryFold(t *testing.T) {
	db := newTestDB(t)
	s := NewDashboard(db, 5)
	ctx := context.Background()

	su := seedSupplier(t, db, "ACME Parts")
	a := seedProduct(t, db, "Product A", 250, 10)

	purchase := models.Purchase{
		Date:       time.Now(),
		SupplierID: su.ID,
		Total:      2600,
		Items: []models.PurchaseItem{
			{ProductID: a.ID, Quantity: 10, PriceAtPurchase: 260},
		},
	}
	require.NoError(t, db.Create(&purchase).Error)

	history, err := s.PurchaseHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "ACME Parts", history[0].Counterparty)
	require.Len(t, history[0].Lines, 1)
	assert.Equal(t, 260.0, history[0].Lines[0].UnitPrice)
}
