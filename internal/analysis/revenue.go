package analysis

import (
	"sort"
	"time"

	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/table"
)

// RevenueRow is one calendar quarter in a revenue summary. Period is the
// quarter's end date (Mar 31, Jun 30, Sep 30 or Dec 31).
type RevenueRow struct {
	Period  time.Time
	Revenue float64
}

// QuarterlyRevenue sums Quantity×UnitPrice per calendar quarter, in
// chronological order. Rows without a usable InvoiceDate are excluded
// from every bucket, and quarters with no qualifying rows are omitted
// rather than emitted as zero-revenue rows.
func QuarterlyRevenue(t *table.Table[dataset.Transaction]) *table.Table[RevenueRow] {
	dated := t.Filter(dataset.Transaction.HasDate)

	var rows []RevenueRow
	for _, g := range table.GroupBy(dated, func(tx dataset.Transaction) time.Time { return quarterEnd(tx.InvoiceDate) }) {
		rows = append(rows, RevenueRow{
			Period:  g.Key,
			Revenue: table.Sum(g.Rows, dataset.Transaction.Revenue),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Period.Before(rows[j].Period) })
	return table.New(rows)
}

// quarterEnd returns the last day of the calendar quarter containing t.
func quarterEnd(t time.Time) time.Time {
	quarter := (int(t.Month()) - 1) / 3
	firstOfNext := time.Date(t.Year(), time.Month(quarter*3+4), 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}
