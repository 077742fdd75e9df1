package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/asapSAGNIK/Data-Alchemist/internal/cli/formatter"
	"github.com/asapSAGNIK/Data-Alchemist/internal/config"
	"github.com/asapSAGNIK/Data-Alchemist/internal/db"
	"github.com/asapSAGNIK/Data-Alchemist/internal/repository"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// App carries the pieces shared by all subcommands: the resolved
// configuration and the run database, both initialized lazily so
// commands that need neither stay cheap.
type App struct {
	ConfigPath string

	cfg *config.Config
}

// Config loads the project file once and applies output settings.
func (a *App) Config() (config.Config, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	formatter.SetNoColor(cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()))
	a.cfg = &cfg
	return cfg, nil
}

// OpenRuns opens the run database named by the configuration. The
// caller closes the returned handle.
func (a *App) OpenRuns(cfg config.Config) (*sql.DB, repository.RunRepo, error) {
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening run database: %w", err)
	}
	return database, repository.NewSQLiteRunRepo(database), nil
}

// NewRootCmd creates the top-level "alchemist" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "alchemist",
		Short:        "Validate client/worker/task datasets before scheduling",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to the project file (default ./"+config.DefaultFileName+")")

	root.AddCommand(
		newValidateCmd(app),
		newRunsCmd(app),
		newExportCmd(app),
	)
	return root
}
