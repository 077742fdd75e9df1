package cli

import (
	"fmt"

	"github.com/asapSAGNIK/Data-Alchemist/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRunsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded validation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			database, runs, err := app.OpenRuns(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			summaries, err := runs.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(summaries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 = all)")
	return cmd
}
