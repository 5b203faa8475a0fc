package scheduler

import (
	"fmt"
	"strings"

	"ZombieFighters/internal/model"
	"ZombieFighters/internal/recorder"
	"ZombieFighters/internal/report"
	"ZombieFighters/internal/roster"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// HelpText lists the commands HandleCommand understands.
const HelpText = `Available commands:
  add <name>     hire a fighter
  remove <name>  release a team member
  status         money, strength and agility
  team           current team
  pool           fighters for hire
  roster         everything above
  history        recent activity
  reset          start over
  save           write a snapshot now
  quit           leave`

// Scheduler runs the periodic autosave and dispatches text commands against
// the ledger.
type Scheduler struct {
	Cron         *cron.Cron
	Ledger       *roster.Ledger
	Recorder     recorder.Recorder
	SnapshotFile string
	Logger       *zap.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(l *roster.Ledger, rec recorder.Recorder, snapshotFile string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Ledger:       l,
		Recorder:     rec,
		SnapshotFile: snapshotFile,
		Logger:       logger,
	}
}

// Register adds the autosave job.
func (s *Scheduler) Register(autosaveCron string) error {
	if _, err := s.Cron.AddFunc(autosaveCron, s.autosaveTask); err != nil {
		return fmt.Errorf("register autosave task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("scheduler stopped")
}

// Autosave writes the current snapshot to the snapshot file and the recorder.
func (s *Scheduler) Autosave() error {
	snap := s.Ledger.Snapshot()
	if s.SnapshotFile != "" {
		if err := roster.SaveSnapshot(s.SnapshotFile, &snap); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}
	if err := s.Recorder.RecordSnapshot(&snap); err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return nil
}

func (s *Scheduler) autosaveTask() {
	if err := s.Autosave(); err != nil {
		s.Logger.Error("autosave failed", zap.Error(err))
		return
	}
	s.Logger.Debug("autosave done", zap.String("file", s.SnapshotFile))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	verb, arg, _ := strings.Cut(strings.TrimSpace(command), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "add", "recruit", "hire":
		if arg == "" {
			return "usage: add <name>"
		}
		c, ok := s.Ledger.FindAvailable(arg)
		if !ok {
			return report.FormatOutcome(model.OutcomeNotAvailable, model.Candidate{Name: arg}, s.Ledger.Budget())
		}
		outcome := s.Ledger.Recruit(c)
		return report.FormatOutcome(outcome, c, s.Ledger.Budget())
	case "remove", "release", "fire":
		if arg == "" {
			return "usage: remove <name>"
		}
		c, ok := s.Ledger.FindOnTeam(arg)
		if !ok {
			return report.FormatOutcome(model.OutcomeNotOnTeam, model.Candidate{Name: arg}, s.Ledger.Budget())
		}
		outcome := s.Ledger.Release(c)
		return report.FormatOutcome(outcome, c, s.Ledger.Budget())
	case "status":
		snap := s.Ledger.Snapshot()
		return report.FormatStatus(&snap)
	case "team":
		snap := s.Ledger.Snapshot()
		return report.FormatTeam(&snap)
	case "pool", "fighters":
		snap := s.Ledger.Snapshot()
		return report.FormatPool(&snap)
	case "roster":
		snap := s.Ledger.Snapshot()
		return report.FormatRoster(&snap)
	case "history":
		return s.history()
	case "reset":
		outcome := s.Ledger.Reset()
		return report.FormatOutcome(outcome, model.Candidate{}, s.Ledger.Budget())
	case "save":
		if err := s.Autosave(); err != nil {
			s.Logger.Error("manual save failed", zap.Error(err))
			return "save failed: " + err.Error()
		}
		return "saved"
	default:
		return HelpText
	}
}

func (s *Scheduler) history() string {
	events, err := s.Recorder.RecentEvents(10)
	if err != nil {
		s.Logger.Error("load history", zap.Error(err))
		return "history unavailable"
	}
	if len(events) == 0 {
		return "no activity recorded"
	}
	var b strings.Builder
	for _, e := range events {
		b.WriteString(fmt.Sprintf("%s %-15s %-13s money %d -> %d\n",
			e.At.Format("15:04:05"), e.Outcome, e.CandidateName, e.BudgetBefore, e.BudgetAfter))
	}
	return b.String()
}
