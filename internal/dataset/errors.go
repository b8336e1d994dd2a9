package dataset

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when an input file is neither a CSV
// nor an XLSX workbook. Callers get no partial table alongside it.
var ErrUnsupportedFormat = errors.New("unsupported file format, use .xlsx or .csv")

// MissingColumnError reports a required column absent from the input
// header. It is raised at load time, before any aggregation runs.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q missing from input header", e.Column)
}

// RowError records a value that could not be coerced to its declared
// column type. Row errors are collected while loading rather than
// failing the whole file: a bad numeric value excludes the row, a bad
// date keeps the row with a zero date so only date-dependent
// aggregations skip it.
type RowError struct {
	Line   int // 1-based line number in the source file, header included
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
