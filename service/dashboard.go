package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sajilo-inventory/models"
)

// Dashboard is the read-only aggregation side: totals, day/month rollups
// and low-stock alerts over the catalog and the ledger. No mutation.
type Dashboard struct {
	db                *gorm.DB
	lowStockThreshold int
}

func NewDashboard(db *gorm.DB, lowStockThreshold int) *Dashboard {
	return &Dashboard{db: db, lowStockThreshold: lowStockThreshold}
}

type Overview struct {
	TotalCustomers     int64            `json:"total_customers"`
	TotalSuppliers     int64            `json:"total_suppliers"`
	TotalSales         float64          `json:"total_sales"`
	TotalPurchases     float64          `json:"total_purchases"`
	SalesToday         float64          `json:"sales_today"`
	PurchasesToday     float64          `json:"purchases_today"`
	SalesThisMonth     float64          `json:"sales_this_month"`
	PurchasesThisMonth float64          `json:"purchases_this_month"`
	LowStock           []models.Product `json:"low_stock"`
}

func (s *Dashboard) TotalCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error
	return n, err
}

func (s *Dashboard) TotalSuppliers(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Supplier{}).Count(&n).Error
	return n, err
}

// sumTotal folds the total column of a ledger table, optionally limited to
// [from, to). An empty matching set is 0, never an error.
func (s *Dashboard) sumTotal(ctx context.Context, table string, from, to *time.Time) (float64, error) {
	q := s.db.WithContext(ctx).Table(table).Select("COALESCE(SUM(total), 0)")
	if from != nil && to != nil {
		q = q.Where("date >= ? AND date < ?", *from, *to)
	}
	var total float64
	err := q.Scan(&total).Error
	return total, err
}

func (s *Dashboard) TotalSalesAmount(ctx context.Context) (float64, error) {
	return s.sumTotal(ctx, "sales", nil, nil)
}

func (s *Dashboard) TotalPurchasesAmount(ctx context.Context) (float64, error) {
	return s.sumTotal(ctx, "purchases", nil, nil)
}

func dayRange(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return from, from.AddDate(0, 0, 1)
}

func monthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

func (s *Dashboard) SalesForDate(ctx context.Context, day time.Time) (float64, error) {
	from, to := dayRange(day)
	return s.sumTotal(ctx, "sales", &from, &to)
}

func (s *Dashboard) PurchasesForDate(ctx context.Context, day time.Time) (float64, error) {
	from, to := dayRange(day)
	return s.sumTotal(ctx, "purchases", &from, &to)
}

func (s *Dashboard) SalesForMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	from, to := monthRange(year, month, time.Local)
	return s.sumTotal(ctx, "sales", &from, &to)
}

func (s *Dashboard) PurchasesForMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	from, to := monthRange(year, month, time.Local)
	return s.sumTotal(ctx, "purchases", &from, &to)
}

// LowStockProducts lists products at or below the threshold, emptiest
// first.
func (s *Dashboard) LowStockProducts(ctx context.Context, threshold int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("quantity ASC").
		Find(&products).Error
	return products, err
}

func (s *Dashboard) Overview(ctx context.Context) (*Overview, error) {
	now := time.Now()
	var o Overview
	var err error

	if o.TotalCustomers, err = s.TotalCustomers(ctx); err != nil {
		return nil, err
	}
	if o.TotalSuppliers, err = s.TotalSuppliers(ctx); err != nil {
		return nil, err
	}
	if o.TotalSales, err = s.TotalSalesAmount(ctx); err != nil {
		return nil, err
	}
	if o.TotalPurchases, err = s.TotalPurchasesAmount(ctx); err != nil {
		return nil, err
	}
	if o.SalesToday, err = s.SalesForDate(ctx, now); err != nil {
		return nil, err
	}
	if o.PurchasesToday, err = s.PurchasesForDate(ctx, now); err != nil {
		return nil, err
	}
	if o.SalesThisMonth, err = s.SalesForMonth(ctx, now.Year(), now.Month()); err != nil {
		return nil, err
	}
	if o.PurchasesThisMonth, err = s.PurchasesForMonth(ctx, now.Year(), now.Month()); err != nil {
		return nil, err
	}
	if o.LowStock, err = s.LowStockProducts(ctx, s.lowStockThreshold); err != nil {
		return nil, err
	}
	return &o, nil
}
