package cli

import (
	"fmt"

	"github.com/asapSAGNIK/Data-Alchemist/internal/cli/formatter"
	"github.com/asapSAGNIK/Data-Alchemist/internal/config"
	"github.com/asapSAGNIK/Data-Alchemist/internal/importer"
	"github.com/asapSAGNIK/Data-Alchemist/internal/service"
	"github.com/spf13/cobra"
)

// datasetFlags lets any command override the project-file dataset paths.
type datasetFlags struct {
	clients string
	workers string
	tasks   string
}

func (f *datasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.clients, "clients", "", "Clients CSV file")
	cmd.Flags().StringVar(&f.workers, "workers", "", "Workers CSV file")
	cmd.Flags().StringVar(&f.tasks, "tasks", "", "Tasks CSV file")
}

func (f *datasetFlags) resolve(cfg config.Config) config.Datasets {
	paths := cfg.Datasets
	if f.clients != "" {
		paths.Clients = f.clients
	}
	if f.workers != "" {
		paths.Workers = f.workers
	}
	if f.tasks != "" {
		paths.Tasks = f.tasks
	}
	return paths
}

func newValidateCmd(app *App) *cobra.Command {
	var files datasetFlags
	var noPersist bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run a full validation pass over the datasets",
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

			ws := service.NewWorkspace(nil)
			if !noPersist {
				database, runs, err := app.OpenRuns(cfg)
				if err != nil {
					return err
				}
				defer database.Close()
				ws = service.NewWorkspace(runs)
			}

			report, err := ws.Load(cmd.Context(), snap)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
			if !report.OK() {
				return fmt.Errorf("datasets failed validation with %d findings", report.Total())
			}
			return nil
		},
	}

	files.register(cmd)
	cmd.Flags().BoolVar(&noPersist, "no-persist", false, "Skip recording this pass in the run database")
	return cmd
}
