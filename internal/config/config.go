// Package config loads the alchemist project file: where the three
// dataset CSVs live, where validation runs are recorded, and output
// preferences. Everything is optional; env vars override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project file looked up in the working
// directory when no --config flag is given.
const DefaultFileName = "alchemist.yaml"

// Datasets names the three CSV files. Any entry may be empty, leaving
// that dataset unloaded.
type Datasets struct {
	Clients string `yaml:"clients"`
	Workers string `yaml:"workers"`
	Tasks   string `yaml:"tasks"`
}

// Config models the project file.
type Config struct {
	Datasets Datasets `yaml:"datasets"`
	DBPath   string   `yaml:"db_path"`
	NoColor  bool     `yaml:"no_color"`
}

// Default returns the configuration used when no project file exists:
// no datasets wired and the run database under ~/.alchemist.
func Default() Config {
	cfg := Config{}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".alchemist", "runs.db")
	}
	return cfg
}

// Load reads the project file at path, falling back to defaults when
// path is empty and no DefaultFileName exists in the working directory.
// ALCHEMIST_DB and ALCHEMIST_NO_COLOR override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		if cfg.DBPath == "" {
			cfg.DBPath = Default().DBPath
		}
		// Dataset paths are relative to the project file.
		dir := filepath.Dir(path)
		cfg.Datasets.Clients = resolve(dir, cfg.Datasets.Clients)
		cfg.Datasets.Workers = resolve(dir, cfg.Datasets.Workers)
		cfg.Datasets.Tasks = resolve(dir, cfg.Datasets.Tasks)
	case os.IsNotExist(err) && !explicit:
		// No project file is fine; flags can still name the CSVs.
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ALCHEMIST_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ALCHEMIST_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
}
