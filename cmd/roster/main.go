package main

import (
	"fmt"
	"os"

	"ZombieFighters/internal/config"
	"ZombieFighters/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive roster by default.
var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Zombie Fighters - hire a team within your budget",
	Long: `Zombie Fighters keeps a roster ledger: a pool of fighters for hire, the
team you have hired, the money left and the team's total strength and agility.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}
		if path == "" {
			path = "configs/config.yaml"
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Log.File)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive roster interface",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Manage the roster with typed commands",
	Long: `Reads one command per line from stdin:

  add <name>, remove <name>, status, team, pool, roster, history, reset, save, quit`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "List the fighters every session starts with",
	Args:  cobra.NoArgs,
	RunE:  runSeeds,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the last autosaved snapshot and recent activity",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

var (
	reportRaw     bool
	reportHistory int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $CONFIG_PATH or configs/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "print markdown without terminal rendering")
	reportCmd.Flags().IntVar(&reportHistory, "history", 10, "number of recent events to include")

	rootCmd.AddCommand(playCmd, consoleCmd, seedsCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
