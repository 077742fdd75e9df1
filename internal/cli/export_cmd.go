package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/asapSAGNIK/Data-Alchemist/internal/cli/formatter"
	"github.com/asapSAGNIK/Data-Alchemist/internal/config"
	"github.com/asapSAGNIK/Data-Alchemist/internal/importer"
	"github.com/asapSAGNIK/Data-Alchemist/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var files datasetFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the normalized scheduler feed, gated on a clean validation pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			paths := files.resolve(cfg)
			if paths.Clients == "" && paths.Workers == "" && paths.Tasks == "" {
				return fmt.Errorf("no datasets configured; pass --clients/--workers/--tasks or add them to %s", config.DefaultFileName)
			}

			snap, err := importer.LoadSnapshot(paths.Clients, paths.Workers, paths.Tasks)
			if err != nil {
				return err
			}

			database, runs, err := app.OpenRuns(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			ws := service.NewWorkspace(runs)
			report, err := ws.Load(cmd.Context(), snap)
			if err != nil {
				return err
			}
			if !report.OK() {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
				return fmt.Errorf("export blocked: %d findings outstanding", report.Total())
			}

			export, err := service.BuildExport(ws.Snapshot())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(export, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			if err := os.WriteFile(out, append(data, '\n'), 0644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d clients, %d workers, %d tasks)\n",
				out, len(export.Clients), len(export.Workers), len(export.Tasks))
			return nil
		},
	}

	files.register(cmd)
	cmd.Flags().StringVar(&out, "out", "alchemist-export.json", "Output file for the normalized feed")
	return cmd
}
