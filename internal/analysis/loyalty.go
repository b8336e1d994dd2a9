package analysis

import (
	"sort"

	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/table"
)

// LoyaltyRow is one customer in a loyalty summary.
type LoyaltyRow struct {
	CustomerID    string
	PurchaseCount int
}

// LoyalCustomers lists customers with at least minPurchases distinct
// invoices, most frequent first. Repeated invoice numbers for the same
// customer count once. The descending sort is stable, so customers with
// equal counts stay in first-appearance order. A non-positive
// minPurchases returns every customer in the table.
func LoyalCustomers(t *table.Table[dataset.Transaction], minPurchases int) *table.Table[LoyaltyRow] {
	var rows []LoyaltyRow
	for _, g := range table.GroupBy(t, func(tx dataset.Transaction) string { return tx.CustomerID }) {
		count := table.DistinctCount(g.Rows, func(tx dataset.Transaction) string { return tx.InvoiceNo })
		if count >= minPurchases {
			rows = append(rows, LoyaltyRow{CustomerID: g.Key, PurchaseCount: count})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PurchaseCount > rows[j].PurchaseCount
	})
	return table.New(rows)
}
