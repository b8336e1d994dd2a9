// Package dataset defines the retail-transaction row schema and the error
// taxonomy shared by the loader and the analysis pipeline.
package dataset

import "time"

// Column names as they appear in the input file's header row.
const (
	ColCustomerID  = "CustomerID"
	ColInvoiceNo   = "InvoiceNo"
	ColDescription = "Description"
	ColQuantity    = "Quantity"
	ColUnitPrice   = "UnitPrice"
	ColInvoiceDate = "InvoiceDate"
)

// RequiredColumns lists the columns an input file must carry.
// Extra columns are allowed and ignored.
func RequiredColumns() []string {
	return []string{
		ColCustomerID,
		ColInvoiceNo,
		ColDescription,
		ColQuantity,
		ColUnitPrice,
		ColInvoiceDate,
	}
}

// Transaction is one row of the retail-transactions dataset.
//
// Null values are carried as zero values: an empty CustomerID means the
// customer is unknown, and a zero InvoiceDate means the date was missing
// or unparseable. Date-dependent aggregations skip zero dates.
type Transaction struct {
	CustomerID  string
	InvoiceNo   string
	Description string
	Quantity    int
	UnitPrice   float64
	InvoiceDate time.Time
}

// HasCustomer reports whether the row carries a customer identifier.
func (t Transaction) HasCustomer() bool {
	return t.CustomerID != ""
}

// HasDate reports whether the row carries a usable invoice date.
func (t Transaction) HasDate() bool {
	return !t.InvoiceDate.IsZero()
}

// Revenue is the monetary value of the row.
func (t Transaction) Revenue() float64 {
	return float64(t.Quantity) * t.UnitPrice
}
