// Package loader reads a retail-transactions file into a typed table.
// Two formats are supported, dispatched on the file extension: delimited
// text (.csv) and spreadsheet workbooks (.xlsx). Header validation and
// per-column type coercion happen here, so downstream code only ever
// sees well-typed rows.
package loader

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/table"
)

// Format identifies a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// dateLayouts are tried in order when parsing InvoiceDate. The dataset
// ships with "2010-12-01 08:26:00" style timestamps, but exports from
// spreadsheet tools commonly rewrite them.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"1/2/2006",
}

// DetectFormat maps a file extension to a Format. Anything other than
// .csv or .xlsx fails with dataset.ErrUnsupportedFormat.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", dataset.ErrUnsupportedFormat, path)
	}
}

// Load reads a transactions file, picking the parser from the file
// extension. See LoadFormat.
func Load(path string) (*table.Table[dataset.Transaction], []dataset.RowError, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, nil, err
	}
	return LoadFormat(path, format)
}

// LoadFormat reads a transactions file in the given format.
//
// The header row must contain every column in dataset.RequiredColumns,
// otherwise a *dataset.MissingColumnError is returned and no table is
// produced. Values are coerced per column; rows whose Quantity or
// UnitPrice cannot be parsed are dropped and reported in the returned
// row errors, rows with an unparseable InvoiceDate are kept with a zero
// date and likewise reported.
func LoadFormat(path string, format Format) (*table.Table[dataset.Transaction], []dataset.RowError, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)
	switch format {
	case FormatCSV:
		header, rows, err = readCSV(path)
	case FormatXLSX:
		header, rows, err = readXLSX(path)
	default:
		return nil, nil, fmt.Errorf("%w: %q", dataset.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, nil, err
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, nil, err
	}

	transactions := make([]dataset.Transaction, 0, len(rows))
	var rowErrs []dataset.RowError

	for i, raw := range rows {
		line := i + 2 // 1-based, after the header row
		tx, errs := coerceRow(raw, cols, line)
		rowErrs = append(rowErrs, errs...)
		if tx != nil {
			transactions = append(transactions, *tx)
		}
	}

	return table.New(transactions), rowErrs, nil
}

// columnIndex maps required column names to their header positions.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range dataset.RequiredColumns() {
		if _, ok := index[required]; !ok {
			return nil, &dataset.MissingColumnError{Column: required}
		}
	}
	return index, nil
}

// coerceRow parses one raw row into a Transaction. A nil Transaction
// means the row was excluded because a numeric column failed to parse.
func coerceRow(raw []string, cols map[string]int, line int) (*dataset.Transaction, []dataset.RowError) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[i])
	}

	var errs []dataset.RowError

	quantity, err := parseInt(field(dataset.ColQuantity))
	if err != nil {
		errs = append(errs, dataset.RowError{Line: line, Column: dataset.ColQuantity, Err: err})
	}
	price, perr := strconv.ParseFloat(field(dataset.ColUnitPrice), 64)
	if perr != nil {
		errs = append(errs, dataset.RowError{Line: line, Column: dataset.ColUnitPrice, Err: perr})
	}
	if err != nil || perr != nil {
		return nil, errs
	}

	date, derr := parseDate(field(dataset.ColInvoiceDate))
	if derr != nil {
		errs = append(errs, dataset.RowError{Line: line, Column: dataset.ColInvoiceDate, Err: derr})
	}

	return &dataset.Transaction{
		CustomerID:  field(dataset.ColCustomerID),
		InvoiceNo:   field(dataset.ColInvoiceNo),
		Description: field(dataset.ColDescription),
		Quantity:    quantity,
		UnitPrice:   price,
		InvoiceDate: date,
	}, errs
}

// parseInt accepts plain integers plus integral floats ("5.0"), which
// spreadsheet exports produce for integer columns.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

// parseDate tries the known layouts. An empty value is a legitimate
// null and yields a zero time with no error.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", s)
}
