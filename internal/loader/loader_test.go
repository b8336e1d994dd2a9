package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `InvoiceNo,Description,Quantity,InvoiceDate,UnitPrice,CustomerID
536365,WHITE HANGING HEART,6,2010-12-01 08:26:00,2.55,17850
536366,RED WOOLLY HOTTIE,3,2011-01-04 10:00:00,3.39,17850
536367,"KNITTED MUG ""COSY""",2,2011-01-05 09:41:00,1.85,13047
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "transactions.csv", sampleCSV)

	tbl, rowErrs, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if tbl.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", tbl.Len())
	}

	first := tbl.Row(0)
	if first.InvoiceNo != "536365" || first.CustomerID != "17850" {
		t.Errorf("unexpected identifiers: %+v", first)
	}
	if first.Quantity != 6 || first.UnitPrice != 2.55 {
		t.Errorf("numeric coercion failed: %+v", first)
	}
	if got := first.InvoiceDate.Format("2006-01-02 15:04:05"); got != "2010-12-01 08:26:00" {
		t.Errorf("date coercion failed: %s", got)
	}
	if quoted := tbl.Row(2).Description; quoted != `KNITTED MUG "COSY"` {
		t.Errorf("quoted description mangled: %q", quoted)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "transactions.json", "{}")

	tbl, _, err := Load(path)
	if !errors.Is(err, dataset.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if tbl != nil {
		t.Errorf("expected no partial table on format error")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeFile(t, "broken.csv", "InvoiceNo,Description,Quantity,UnitPrice,CustomerID\n1,x,1,1.0,c1\n")

	_, _, err := Load(path)

	var missing *dataset.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if missing.Column != dataset.ColInvoiceDate {
		t.Errorf("expected missing InvoiceDate, got %s", missing.Column)
	}
}

func TestLoad_CollectsRowErrors(t *testing.T) {
	path := writeFile(t, "dirty.csv",
		"InvoiceNo,Description,Quantity,InvoiceDate,UnitPrice,CustomerID\n"+
			"1,apple,6,2010-12-01 08:26:00,2.55,c1\n"+
			"2,pear,six,2010-12-01 08:26:00,2.55,c1\n"+ // bad quantity, row dropped
			"3,plum,1,not-a-date,1.00,c2\n") // bad date, row kept with zero date

	tbl, rowErrs, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows (bad quantity dropped), got %d", tbl.Len())
	}
	if len(rowErrs) != 2 {
		t.Fatalf("expected 2 row errors, got %d: %v", len(rowErrs), rowErrs)
	}
	if rowErrs[0].Line != 3 || rowErrs[0].Column != dataset.ColQuantity {
		t.Errorf("unexpected first row error: %+v", rowErrs[0])
	}
	if rowErrs[1].Line != 4 || rowErrs[1].Column != dataset.ColInvoiceDate {
		t.Errorf("unexpected second row error: %+v", rowErrs[1])
	}
	if kept := tbl.Row(1); kept.InvoiceNo != "3" || kept.HasDate() {
		t.Errorf("bad-date row should be kept with zero date: %+v", kept)
	}
}

func TestLoad_EmptyAndNullValues(t *testing.T) {
	path := writeFile(t, "nulls.csv",
		"InvoiceNo,Description,Quantity,InvoiceDate,UnitPrice,CustomerID\n"+
			"1,apple,6,2010-12-01 08:26:00,2.55,\n")

	tbl, rowErrs, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("empty CustomerID is a legitimate null, got errors: %v", rowErrs)
	}
	if tbl.Row(0).HasCustomer() {
		t.Errorf("empty CustomerID should read back as null")
	}
}

func TestLoad_IntegralFloatQuantity(t *testing.T) {
	// Spreadsheet exports render integer columns as "6.0".
	path := writeFile(t, "floats.csv",
		"InvoiceNo,Description,Quantity,InvoiceDate,UnitPrice,CustomerID\n"+
			"1,apple,6.0,2010-12-01 08:26:00,2.55,17850.0\n")

	tbl, rowErrs, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if tbl.Row(0).Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", tbl.Row(0).Quantity)
	}
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"InvoiceNo", "Description", "Quantity", "InvoiceDate", "UnitPrice", "CustomerID"},
		{"536365", "WHITE HANGING HEART", "6", "2010-12-01 08:26:00", "2.55", "17850"},
		{"536368", "JUMBO BAG RED", "10", "2011-03-03 11:27:00", "1.95", "13047"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("failed to build workbook: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	_ = f.Close()

	tbl, rowErrs, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if tbl.Row(1).UnitPrice != 1.95 {
		t.Errorf("xlsx coercion failed: %+v", tbl.Row(1))
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"data.csv", FormatCSV, true},
		{"data.CSV", FormatCSV, true},
		{"data.xlsx", FormatXLSX, true},
		{"data.xls", "", false},
		{"data.parquet", "", false},
		{"data", "", false},
	}
	for _, c := range cases {
		format, err := DetectFormat(c.path)
		if c.ok && (err != nil || format != c.format) {
			t.Errorf("%s: expected %s, got %s (%v)", c.path, c.format, format, err)
		}
		if !c.ok && !errors.Is(err, dataset.ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", c.path, err)
		}
	}
}
