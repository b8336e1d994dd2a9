package commands

import (
	"github.com/spf13/cobra"
)

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Report average quantity and price per product",
		Long: `Report the arithmetic mean of Quantity and UnitPrice for every
product, one row per distinct description in first-appearance order.`,
		Example: `  trendmill patterns --data-file transactions.csv --output markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPatterns(cmd)
		},
	}
}

func runPatterns(cmd *cobra.Command) error {
	cfg := getConfig()

	r, err := newRunner(cfg)
	if err != nil {
		return err
	}

	summary, err := r.PurchasePatterns()
	if err != nil {
		return err
	}

	rows := make([][]any, 0, summary.Len())
	for _, row := range summary.Rows() {
		rows = append(rows, []any{row.Item, row.MeanQuantity, row.MeanPrice})
	}
	return renderResults(cmd.OutOrStdout(), []string{"item", "mean_quantity", "mean_price"}, rows, cfg.Output)
}
