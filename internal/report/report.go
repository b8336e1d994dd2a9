// Package report orchestrates the analysis pipeline: it loads the
// transactions file once, cleans it once, and serves the individual
// summaries from the cached clean table.
package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/trendmill/trendmill/internal/analysis"
	"github.com/trendmill/trendmill/internal/dataset"
	"github.com/trendmill/trendmill/internal/loader"
	"github.com/trendmill/trendmill/internal/table"
)

// Config holds runner configuration.
type Config struct {
	// DataFile is the path to the transactions file (.csv or .xlsx).
	DataFile string
	// Format overrides extension-based detection when non-empty.
	Format string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Stats describes a load: how many rows came in, how many survived
// cleaning, and which rows carried unparseable values.
type Stats struct {
	RawRows   int
	CleanRows int
	Dropped   int
	RowErrors []dataset.RowError
}

// Runner loads a dataset lazily and caches the cleaned table so several
// reports in one process share a single file read. It is not safe for
// concurrent use; the pipeline is strictly sequential.
type Runner struct {
	logger  *slog.Logger
	path    string
	format  loader.Format
	loaded  bool
	raw     *table.Table[dataset.Transaction]
	cleaned *table.Table[dataset.Transaction]
	rowErrs []dataset.RowError
}

// New creates a runner. The file format is resolved up front so an
// unsupported extension fails before any report is requested.
func New(cfg Config) (*Runner, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.DataFile == "" {
		return nil, fmt.Errorf("no data file configured")
	}

	var (
		format loader.Format
		err    error
	)
	if cfg.Format != "" {
		switch loader.Format(cfg.Format) {
		case loader.FormatCSV, loader.FormatXLSX:
			format = loader.Format(cfg.Format)
		default:
			return nil, fmt.Errorf("%w: %q", dataset.ErrUnsupportedFormat, cfg.Format)
		}
	} else {
		format, err = loader.DetectFormat(cfg.DataFile)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("initializing runner", "data_file", cfg.DataFile, "format", format)

	return &Runner{logger: logger, path: cfg.DataFile, format: format}, nil
}

// load reads and cleans the dataset on first use.
func (r *Runner) load() error {
	if r.loaded {
		return nil
	}

	raw, rowErrs, err := loader.LoadFormat(r.path, r.format)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", r.path, err)
	}

	r.raw = raw
	r.rowErrs = rowErrs
	r.cleaned = analysis.Clean(raw)
	r.loaded = true

	r.logger.Debug("dataset loaded",
		"raw_rows", r.raw.Len(),
		"clean_rows", r.cleaned.Len(),
		"row_errors", len(rowErrs))

	return nil
}

// Stats loads the dataset if needed and reports load/clean counts.
func (r *Runner) Stats() (Stats, error) {
	if err := r.load(); err != nil {
		return Stats{}, err
	}
	return Stats{
		RawRows:   r.raw.Len(),
		CleanRows: r.cleaned.Len(),
		Dropped:   r.raw.Len() - r.cleaned.Len(),
		RowErrors: r.rowErrs,
	}, nil
}

// LoyalCustomers reports customers with at least minPurchases distinct
// invoices over the cleaned table.
func (r *Runner) LoyalCustomers(minPurchases int) (*table.Table[analysis.LoyaltyRow], error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return analysis.LoyalCustomers(r.cleaned, minPurchases), nil
}

// QuarterlyRevenue reports revenue per calendar quarter over the cleaned
// table.
func (r *Runner) QuarterlyRevenue() (*table.Table[analysis.RevenueRow], error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return analysis.QuarterlyRevenue(r.cleaned), nil
}

// HighDemandProducts reports the limit best-selling products over the
// cleaned table.
func (r *Runner) HighDemandProducts(limit int) (*table.Table[analysis.ProductRow], error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return analysis.HighDemandProducts(r.cleaned, limit), nil
}

// PurchasePatterns reports mean quantity and price per product over the
// cleaned table.
func (r *Runner) PurchasePatterns() (*table.Table[analysis.PatternRow], error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return analysis.PurchasePatterns(r.cleaned), nil
}
