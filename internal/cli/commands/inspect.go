package commands

import (
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show load and cleaning statistics for the data file",
		Long: `Load the data file and report how many rows it contains, how many
survive cleaning, and which rows carried values that could not be
parsed. Useful for judging data quality before trusting the reports.`,
		Example: `  trendmill inspect --data-file transactions.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd)
		},
	}
}

func runInspect(cmd *cobra.Command) error {
	cfg := getConfig()

	r, err := newRunner(cfg)
	if err != nil {
		return err
	}

	stats, err := r.Stats()
	if err != nil {
		return err
	}

	rows := [][]any{
		{"raw_rows", stats.RawRows},
		{"clean_rows", stats.CleanRows},
		{"dropped_rows", stats.Dropped},
		{"parse_errors", len(stats.RowErrors)},
	}
	for _, rowErr := range stats.RowErrors {
		rows = append(rows, []any{"parse_error", rowErr.Error()})
	}
	return renderResults(cmd.OutOrStdout(), []string{"metric", "value"}, rows, cfg.Output)
}
