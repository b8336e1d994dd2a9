package analysis

import (
	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/table"
)

// PatternRow is one product in a purchase-pattern summary.
type PatternRow struct {
	Item         string
	MeanQuantity float64
	MeanPrice    float64
}

// PurchasePatterns reports the average quantity and unit price per
// product, one row per distinct Description in first-appearance order.
func PurchasePatterns(t *table.Table[dataset.Transaction]) *table.Table[PatternRow] {
	var rows []PatternRow
	for _, g := range table.GroupBy(t, func(tx dataset.Transaction) string { return tx.Description }) {
		rows = append(rows, PatternRow{
			Item:         g.Key,
			MeanQuantity: table.Mean(g.Rows, func(tx dataset.Transaction) float64 { return float64(tx.Quantity) }),
			MeanPrice:    table.Mean(g.Rows, func(tx dataset.Transaction) float64 { return tx.UnitPrice }),
		})
	}
	return table.New(rows)
}
