// Package commands implements the trendmill subcommands. Each command
// builds a report.Runner from the active configuration, requests one
// summary table, and renders it in the configured output format.
package commands

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/trendmill/trendmill/internal/cli/config"
	"github.com/trendmill/trendmill/internal/report"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// getConfig returns the current configuration. It falls back to
// environment variables when no LoadConfig has run, which keeps the
// commands usable from tests that bypass the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cfg := &config.Config{
		DataFile:     os.Getenv("TRENDMILL_DATA_FILE"),
		Format:       os.Getenv("TRENDMILL_FORMAT"),
		MinPurchases: getEnvInt("TRENDMILL_MIN_PURCHASES", config.DefaultMinPurchases),
		TopLimit:     getEnvInt("TRENDMILL_TOP_LIMIT", config.DefaultTopLimit),
		Output:       getEnvOrDefault("TRENDMILL_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("TRENDMILL_VERBOSE") == "true",
	}
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

// newLogger builds the command logger: debug text on stderr when
// verbose, discard otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRunner builds a report runner from the configuration.
func newRunner(cfg *config.Config) (*report.Runner, error) {
	return report.New(report.Config{
		DataFile: cfg.DataFile,
		Format:   cfg.Format,
		Logger:   newLogger(cfg),
	})
}
