package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ZombieFighters/internal/console"
	"ZombieFighters/internal/recorder"
	"ZombieFighters/internal/report"
	"ZombieFighters/internal/roster"
	"ZombieFighters/internal/seed"
	"ZombieFighters/internal/ui"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := ui.Run(s.ledger); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	snap := s.ledger.Snapshot()
	fmt.Fprintf(out, "Zombie Fighters - type 'help' for commands\n%s", report.FormatStatus(&snap))
	err = console.Run(ctx, cmd.InOrStdin(), out, s.sched.HandleCommand, logger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runSeeds(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting money: %d\n\n", cfg.Ledger.InitialBudget)
	for _, c := range seed.Candidates() {
		fmt.Fprintf(out, "%-13s price %3d | str %2d | agi %2d | %s\n",
			c.Name, c.Price, c.Strength, c.Agility, c.ID)
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	snap, err := roster.LoadSnapshot(cfg.Storage.SnapshotFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No snapshot yet. Play a session first.")
			return nil
		}
		return fmt.Errorf("load snapshot: %w", err)
	}

	md := report.Markdown(snap, recentEvents(reportHistory))
	if reportRaw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func recentEvents(limit int) []recorder.Event {
	if limit <= 0 || cfg.Storage.SQLitePath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.Storage.SQLitePath); err != nil {
		return nil
	}
	rec := openRecorder()
	defer rec.Close()

	events, err := rec.RecentEvents(limit)
	if err != nil {
		logger.Warn("load recent events", zap.Error(err))
		return nil
	}
	return events
}
