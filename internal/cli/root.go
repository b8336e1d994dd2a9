// Package cli provides the command-line interface for trendmill.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trendmill/trendmill/internal/cli/commands"
	"github.com/trendmill/trendmill/internal/cli/config"
)

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trendmill",
		Short: "Trendmill - Retail Transaction Analytics",
		Long: `Trendmill analyzes a retail-transactions export (.csv or .xlsx).

It loads the file, drops incomplete or invalid rows, and computes summary
reports: loyal customers, quarterly revenue, best-selling products and
per-product purchase patterns.`,
		Version:       commands.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to config file (default: trendmill.yaml)")
	flags.String("data-file", "", "Path to the transactions file (.csv or .xlsx)")
	flags.String("format", "", "Input format override: csv or xlsx")
	flags.String("output", config.DefaultOutput, "Output format: table, json, csv or markdown")
	flags.Int("min-purchases", config.DefaultMinPurchases, "Loyalty threshold (distinct invoices)")
	flags.Int("top-limit", config.DefaultTopLimit, "Number of products in the demand report")
	flags.Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewLoyaltyCommand(),
		commands.NewRevenueCommand(),
		commands.NewProductsCommand(),
		commands.NewPatternsCommand(),
		commands.NewInspectCommand(),
		commands.NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
