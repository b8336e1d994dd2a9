package analysis

import (
	"sort"

	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/table"
)

// ProductRow is one product in a demand summary.
type ProductRow struct {
	ProductName string
	TotalSold   int
}

// HighDemandProducts lists the limit best-selling products by total
// quantity sold, descending. The sort is stable: products with equal
// totals keep the order in which they first appear in the input. A limit
// of 0 yields an empty table; a limit beyond the number of distinct
// products yields all of them.
func HighDemandProducts(t *table.Table[dataset.Transaction], limit int) *table.Table[ProductRow] {
	var rows []ProductRow
	for _, g := range table.GroupBy(t, func(tx dataset.Transaction) string { return tx.Description }) {
		total := table.Sum(g.Rows, func(tx dataset.Transaction) float64 { return float64(tx.Quantity) })
		rows = append(rows, ProductRow{ProductName: g.Key, TotalSold: int(total)})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSold > rows[j].TotalSold
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return table.New(rows)
}
