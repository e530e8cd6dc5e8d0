package service

import (
	"context"
	"time"
)

// Ledger history listings for the "past sales" / "past purchases" screens.
// Headers, line items, product and counterparty names are joined in SQL
// and folded into one summary per transaction in application code.

type LineSummary struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type TransactionSummary struct {
	ID           uint          `json:"id"`
	Date         time.Time     `json:"date"`
	Counterparty string        `json:"counterparty"`
	Lines        []LineSummary `json:"lines"`
	Total        float64       `json:"total"`
}

type historyRow struct {
	ID           uint
	Date         time.Time
	Counterparty string
	Total        float64
	ProductName  *string
	Quantity     *int
	UnitPrice    *float64
}

func (s *Dashboard) SalesHistory(ctx context.Context) ([]TransactionSummary, error) {
	var rows []historyRow
	err := s.db.WithContext(ctx).
		Table("sales").
		Select(`
			sales.id,
			sales.date,
			customers.name AS counterparty,
			sales.total,
			products.name AS product_name,
			sale_items.quantity AS quantity,
			sale_items.price_at_sale AS unit_price
		`).
		Joins("INNER JOIN customers ON customers.id = sales.customer_id").
		Joins("LEFT JOIN sale_items ON sale_items.sale_id = sales.id").
		Joins("LEFT JOIN products ON products.id = sale_items.product_id").
		Order("sales.date DESC, sales.id DESC, sale_items.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldHistory(rows), nil
}

func (s *Dashboard) PurchaseHistory(ctx context.Context) ([]TransactionSummary, error) {
	var rows []historyRow
	err := s.db.WithContext(ctx).
		Table("purchases").
		Select(`
			purchases.id,
			purchases.date,
			suppliers.name AS counterparty,
			purchases.total,
			products.name AS product_name,
			purchase_items.quantity AS quantity,
			purchase_items.price_at_purchase AS unit_price
		`).
		Joins("INNER JOIN suppliers ON suppliers.id = purchases.supplier_id").
		Joins("LEFT JOIN purchase_items ON purchase_items.purchase_id = purchases.id").
		Joins("LEFT JOIN products ON products.id = purchase_items.product_id").
		Order("purchases.date DESC, purchases.id DESC, purchase_items.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldHistory(rows), nil
}

// foldHistory groups the flat join rows into one summary per transaction,
// preserving row order.
func foldHistory(rows []historyRow) []TransactionSummary {
	out := make([]TransactionSummary, 0)
	idx := make(map[uint]int)
	for _, r := range rows {
		i, ok := idx[r.ID]
		if !ok {
			out = append(out, TransactionSummary{
				ID:           r.ID,
				Date:         r.Date,
				Counterparty: r.Counterparty,
				Total:        r.Total,
			})
			i = len(out) - 1
			idx[r.ID] = i
		}
		if r.ProductName == nil || r.Quantity == nil || r.UnitPrice == nil {
			continue
		}
		out[i].Lines = append(out[i].Lines, LineSummary{
			ProductName: *r.ProductName,
			Quantity:    *r.Quantity,
			UnitPrice:   *r.UnitPrice,
		})
	}
	return out
}
