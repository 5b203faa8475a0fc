package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Ledger struct {
		InitialBudget int `yaml:"initial_budget"`
	} `yaml:"ledger"`
	Storage struct {
		SQLitePath   string `yaml:"sqlite_path"`
		SnapshotFile string `yaml:"snapshot_file"`
	} `yaml:"storage"`
	Schedule struct {
		AutosaveCron string `yaml:"autosave_cron"`
	} `yaml:"schedule"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file yields the defaults. An empty
// storage.sqlite_path disables history recording and an empty log.file sends
// logs to stderr.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// Preset so an explicit 0 budget, empty sqlite_path or empty log file in
	// the file survives.
	cfg.Ledger.InitialBudget = 100
	cfg.Storage.SQLitePath = "data/roster.db"
	cfg.Log.File = "data/roster.log"

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("INITIAL_BUDGET"); v != "" {
		if budget, err := strconv.Atoi(v); err == nil {
			c.Ledger.InitialBudget = budget
		}
	}
	if v, ok := os.LookupEnv("SQLITE_PATH"); ok {
		c.Storage.SQLitePath = v
	}
	if v := os.Getenv("SNAPSHOT_FILE"); v != "" {
		c.Storage.SnapshotFile = v
	}
	if v := os.Getenv("CRON_AUTOSAVE"); v != "" {
		c.Schedule.AutosaveCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		c.Log.File = v
	}
}

func (c *Config) applyDefaults() {
	if c.Storage.SnapshotFile == "" {
		c.Storage.SnapshotFile = "data/roster_snapshot.json"
	}
	if c.Schedule.AutosaveCron == "" {
		c.Schedule.AutosaveCron = "0 */1 * * * *"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Ledger.InitialBudget < 0 {
		return fmt.Errorf("ledger.initial_budget must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
