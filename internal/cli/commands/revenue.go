package commands

import (
	"github.com/spf13/cobra"
)

// NewRevenueCommand creates the revenue command.
func NewRevenueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revenue",
		Short: "Sum revenue per calendar quarter",
		Long: `Report total revenue (Quantity × UnitPrice) per calendar quarter,
in chronological order. Each period is labeled with the quarter's end
date. Rows without a parseable invoice date are left out; quarters with
no transactions are omitted rather than reported as zero.`,
		Example: `  trendmill revenue --data-file transactions.csv
  trendmill revenue --data-file transactions.xlsx --output csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRevenue(cmd)
		},
	}
}

func runRevenue(cmd *cobra.Command) error {
	cfg := getConfig()

	r, err := newRunner(cfg)
	if err != nil {
		return err
	}

	summary, err := r.QuarterlyRevenue()
	if err != nil {
		return err
	}

	rows := make([][]any, 0, summary.Len())
	for _, row := range summary.Rows() {
		rows = append(rows, []any{row.Period.Format("2006-01-02"), row.Revenue})
	}
	return renderResults(cmd.OutOrStdout(), []string{"period", "revenue"}, rows, cfg.Output)
}
