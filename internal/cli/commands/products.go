package commands

import (
	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command.
func NewProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the best-selling products by total quantity",
		Long: `Report the --top-limit products with the highest total quantity sold,
descending. Products with equal totals keep the order in which they
first appear in the data.`,
		Example: `  trendmill products --data-file transactions.csv --top-limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProducts(cmd)
		},
	}
}

func runProducts(cmd *cobra.Command) error {
	cfg := getConfig()

	r, err := newRunner(cfg)
	if err != nil {
		return err
	}

	summary, err := r.HighDemandProducts(cfg.TopLimit)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, summary.Len())
	for _, row := range summary.Rows() {
		rows = append(rows, []any{row.ProductName, row.TotalSold})
	}
	return renderResults(cmd.OutOrStdout(), []string{"ProductName", "TotalSold"}, rows, cfg.Output)
}
