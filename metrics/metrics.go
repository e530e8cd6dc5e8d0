package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SalesCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_sales_committed_total",
		Help: "Number of sales committed to the ledger.",
	})
	PurchasesCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_purchases_committed_total",
		Help: "Number of purchases committed to the ledger.",
	})
	CommitConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_commit_conflicts_total",
		Help: "Commits retried or aborted due to transaction conflicts.",
	})
)
