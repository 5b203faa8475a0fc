package main

import (
	"fmt"

	"ZombieFighters/internal/recorder"
	"ZombieFighters/internal/roster"
	"ZombieFighters/internal/scheduler"
	"ZombieFighters/internal/seed"

	"go.uber.org/zap"
)

// session wires one ledger to its recorder and autosave scheduler.
type session struct {
	rec    recorder.Recorder
	ledger *roster.Ledger
	sched  *scheduler.Scheduler
}

func openRecorder() recorder.Recorder {
	if cfg.Storage.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Storage.SQLitePath, logger)
	if err != nil {
		logger.Warn("init sqlite recorder failed, using noop", zap.Error(err))
		return recorder.NewNoopRecorder()
	}
	return sr
}

func openSession() (*session, error) {
	rec := openRecorder()
	ledger := roster.NewLedger(seed.Candidates(), cfg.Ledger.InitialBudget, logger, rec)
	sched := scheduler.NewScheduler(ledger, rec, cfg.Storage.SnapshotFile, logger)
	if err := sched.Register(cfg.Schedule.AutosaveCron); err != nil {
		rec.Close()
		return nil, fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()

	logger.Info("session started",
		zap.Int("budget", cfg.Ledger.InitialBudget),
		zap.Int("fighters", len(ledger.State().Pool)))
	return &session{rec: rec, ledger: ledger, sched: sched}, nil
}

// close stops autosave, writes a final snapshot and closes the recorder.
func (s *session) close() {
	s.sched.Stop()
	if err := s.sched.Autosave(); err != nil {
		logger.Error("final autosave failed", zap.Error(err))
	}
	if err := s.rec.Close(); err != nil {
		logger.Error("close recorder", zap.Error(err))
	}
	logger.Info("session ended")
}
