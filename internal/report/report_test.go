package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/testutil"
)

const fixtureCSV = `InvoiceNo,Description,Quantity,InvoiceDate,UnitPrice,CustomerID
536365,WHITE HANGING HEART,6,2010-12-01 08:26:00,2.55,17850
536366,RED WOOLLY HOTTIE,3,2011-01-04 10:00:00,3.39,17850
536367,WHITE HANGING HEART,2,2011-01-05 09:41:00,2.55,13047
536368,BROKEN ROW,-4,2011-01-05 09:41:00,2.55,13047
536369,NO CUSTOMER,5,2011-01-06 09:41:00,1.25,
`

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	r, err := New(Config{DataFile: path, Logger: testutil.NewTestLogger(t)})
	if err != nil {
		t.Fatalf("failed to create runner: %v", err)
	}
	return r
}

func TestRunner_Stats(t *testing.T) {
	r := newTestRunner(t)

	stats, err := r.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.RawRows != 5 || stats.CleanRows != 3 || stats.Dropped != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(stats.RowErrors) != 0 {
		t.Errorf("unexpected row errors: %v", stats.RowErrors)
	}
}

func TestRunner_ReportsShareOneLoad(t *testing.T) {
	r := newTestRunner(t)

	loyal, err := r.LoyalCustomers(2)
	if err != nil {
		t.Fatalf("loyalty failed: %v", err)
	}
	if loyal.Len() != 1 || loyal.Row(0).CustomerID != "17850" {
		t.Errorf("unexpected loyalty rows: %v", loyal.Rows())
	}

	revenue, err := r.QuarterlyRevenue()
	if err != nil {
		t.Fatalf("revenue failed: %v", err)
	}
	if revenue.Len() != 2 {
		t.Errorf("expected 2 quarters, got %d", revenue.Len())
	}

	products, err := r.HighDemandProducts(1)
	if err != nil {
		t.Fatalf("products failed: %v", err)
	}
	if products.Len() != 1 || products.Row(0).ProductName != "WHITE HANGING HEART" {
		t.Errorf("unexpected top product: %v", products.Rows())
	}

	patterns, err := r.PurchasePatterns()
	if err != nil {
		t.Fatalf("patterns failed: %v", err)
	}
	if patterns.Len() != 2 {
		t.Errorf("expected 2 products, got %d", patterns.Len())
	}
}

func TestNew_RequiresDataFile(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing data file")
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New(Config{DataFile: "data.parquet"})
	if !errors.Is(err, dataset.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}

	_, err = New(Config{DataFile: "data.csv", Format: "parquet"})
	if !errors.Is(err, dataset.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat for explicit format, got %v", err)
	}
}

func TestNew_ExplicitFormatOverridesExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.dat")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	r, err := New(Config{DataFile: path, Format: "csv"})
	if err != nil {
		t.Fatalf("explicit format should bypass extension detection: %v", err)
	}
	stats, err := r.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.RawRows != 5 {
		t.Errorf("expected 5 raw rows, got %d", stats.RawRows)
	}
}
