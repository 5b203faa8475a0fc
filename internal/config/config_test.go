package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"INITIAL_BUDGET", "SNAPSHOT_FILE", "CRON_AUTOSAVE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	// SQLITE_PATH and LOG_FILE are checked with LookupEnv, so they must be
	// absent rather than empty.
	for _, k := range []string{"SQLITE_PATH", "LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Ledger.InitialBudget)
	assert.Equal(t, "data/roster.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "data/roster_snapshot.json", cfg.Storage.SnapshotFile)
	assert.Equal(t, "0 */1 * * * *", cfg.Schedule.AutosaveCron)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "data/roster.log", cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
ledger:
  initial_budget: 0
storage:
  sqlite_path: ""
  snapshot_file: /tmp/snap.json
schedule:
  autosave_cron: "*/5 * * * * *"
log:
  level: debug
  file: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Ledger.InitialBudget)
	assert.Empty(t, cfg.Storage.SQLitePath, "explicit empty path disables history")
	assert.Equal(t, "/tmp/snap.json", cfg.Storage.SnapshotFile)
	assert.Equal(t, "*/5 * * * * *", cfg.Schedule.AutosaveCron)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File, "explicit empty file logs to stderr")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "ledger:\n  initial_budget: 50\n")

	t.Run("INITIAL_BUDGET overrides file", func(t *testing.T) {
		t.Setenv("INITIAL_BUDGET", "250")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 250, cfg.Ledger.InitialBudget)
	})

	t.Run("unparseable INITIAL_BUDGET is ignored", func(t *testing.T) {
		t.Setenv("INITIAL_BUDGET", "lots")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.Ledger.InitialBudget)
	})

	t.Run("empty SQLITE_PATH disables history", func(t *testing.T) {
		t.Setenv("SQLITE_PATH", "")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Storage.SQLitePath)
	})

	t.Run("empty LOG_FILE logs to stderr", func(t *testing.T) {
		t.Setenv("LOG_FILE", "")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Log.File)
	})

	t.Run("LOG_LEVEL and LOG_FILE", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("LOG_FILE", "/var/log/roster.log")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "/var/log/roster.log", cfg.Log.File)
	})
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "ledger: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	cfg.Ledger.InitialBudget = -5
	assert.Error(t, cfg.Validate())

	cfg.Ledger.InitialBudget = 100
	cfg.Log.Level = "chatty"
	assert.Error(t, cfg.Validate())
}
