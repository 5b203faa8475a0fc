package recorder

import (
	"time"

	"ZombieFighters/internal/model"
)

// Event records one attempted ledger transition, whether or not it changed state.
type Event struct {
	At            time.Time
	Action        model.ActionKind
	Outcome       model.Outcome
	CandidateID   string
	CandidateName string
	Price         int
	BudgetBefore  int
	BudgetAfter   int
	TotalStrength int
	TotalAgility  int
	TeamSize      int
	PoolSize      int
}

// Recorder persists session history for later analysis.
type Recorder interface {
	RecordEvent(evt *Event) error
	RecordSnapshot(snap *model.Snapshot) error
	RecentEvents(limit int) ([]Event, error)
	Close() error
}
