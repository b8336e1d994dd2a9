// Package config provides configuration management for the trendmill CLI.
// Values are layered koanf-style: defaults, then trendmill.yaml, then
// TRENDMILL_* environment variables, then flags.
package config

import "fmt"

// Config holds all CLI configuration options.
type Config struct {
	// DataFile is the transactions file to analyze (.csv or .xlsx).
	DataFile string `koanf:"data_file"`
	// Format overrides extension-based detection ("csv" or "xlsx").
	Format string `koanf:"format"`
	// MinPurchases is the default loyalty threshold.
	MinPurchases int `koanf:"min_purchases"`
	// TopLimit is the default number of products for the demand report.
	TopLimit int `koanf:"top_limit"`
	// Output selects the render mode: table, json, csv or markdown.
	Output string `koanf:"output"`
	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultMinPurchases = 5
	DefaultTopLimit     = 10
	DefaultOutput       = "table"
)

// Validate checks option values that have a closed set of choices.
func (c *Config) Validate() error {
	switch c.Output {
	case "table", "json", "csv", "md", "markdown":
	default:
		return fmt.Errorf("unknown output format %q (use table, json, csv or markdown)", c.Output)
	}
	switch c.Format {
	case "", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown input format %q (use csv or xlsx)", c.Format)
	}
	return nil
}
