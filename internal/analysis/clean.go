// Package analysis implements the cleaning step and the summary
// aggregations over a transactions table. Every function here is pure:
// it never mutates its input and always returns a freshly built result,
// so calls compose into a pipeline and are trivially repeatable.
package analysis

import (
	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/table"
)

// Clean drops incomplete or invalid entries: rows with a missing
// CustomerID, a negative Quantity, or a negative UnitPrice. The result
// is a subsequence of the input and cleaning an already-clean table is
// a no-op.
func Clean(t *table.Table[dataset.Transaction]) *table.Table[dataset.Transaction] {
	return t.Filter(func(tx dataset.Transaction) bool {
		return tx.HasCustomer() && tx.Quantity >= 0 && tx.UnitPrice >= 0
	})
}
