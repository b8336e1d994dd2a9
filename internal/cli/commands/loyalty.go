package commands

import (
	"github.com/spf13/cobra"
)

// NewLoyaltyCommand creates the loyalty command.
func NewLoyaltyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "loyalty",
		Short: "List customers with at least min-purchases distinct invoices",
		Long: `List loyal customers, most frequent first.

A customer's purchase count is the number of distinct invoice numbers on
their cleaned transactions; repeated lines on one invoice count once.
The threshold comes from --min-purchases (config key: min_purchases).`,
		Example: `  # Customers with 5+ purchases, as a table
  trendmill loyalty --data-file transactions.csv

  # Lower the bar and emit JSON
  trendmill loyalty --data-file transactions.csv --min-purchases 2 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoyalty(cmd)
		},
	}
}

func runLoyalty(cmd *cobra.Command) error {
	cfg := getConfig()

	r, err := newRunner(cfg)
	if err != nil {
		return err
	}

	summary, err := r.LoyalCustomers(cfg.MinPurchases)
	if err != nil {
		return err
	}

	rows := make([][]any, 0, summary.Len())
	for _, row := range summary.Rows() {
		rows = append(rows, []any{row.CustomerID, row.PurchaseCount})
	}
	return renderResults(cmd.OutOrStdout(), []string{"CustomerID", "PurchaseCount"}, rows, cfg.Output)
}
