package roster

import (
	"strings"
	"sync"
	"time"

	"ZombieFighters/internal/model"
	"ZombieFighters/internal/recorder"

	"go.uber.org/zap"
)

// Ledger owns the roster state for one session: the available pool, the
// team and the remaining budget.
type Ledger struct {
	mu            sync.Mutex
	state         model.State
	seed          []model.Candidate
	initialBudget int
	logger        *zap.Logger
	rec           recorder.Recorder
}

// NewLedger creates a Ledger holding every seed candidate in the pool and the
// full initial budget. rec may be nil.
func NewLedger(seed []model.Candidate, initialBudget int, logger *zap.Logger, rec recorder.Recorder) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	l := &Ledger{
		seed:          append([]model.Candidate(nil), seed...),
		initialBudget: initialBudget,
		logger:        logger,
		rec:           rec,
	}
	l.state = l.freshState()
	return l
}

func (l *Ledger) freshState() model.State {
	return model.State{
		Pool:   append([]model.Candidate(nil), l.seed...),
		Team:   []model.Candidate{},
		Budget: l.initialBudget,
	}
}

// Recruit moves c from the pool to the end of the team if the budget covers
// its price. A rejected recruit leaves the ledger untouched.
func (l *Ledger) Recruit(c model.Candidate) model.Outcome {
	return l.apply(model.Action{Kind: model.ActionRecruit, Candidate: c})
}

// Release moves the first team entry matching c back to the end of the pool
// and refunds its price. Releasing a candidate not on the team is a no-op.
func (l *Ledger) Release(c model.Candidate) model.Outcome {
	return l.apply(model.Action{Kind: model.ActionRelease, Candidate: c})
}

// Reset starts a new session from the seed list.
func (l *Ledger) Reset() model.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	before := l.state
	l.state = l.freshState()
	l.logger.Info("roster reset", zap.Int("budget", l.state.Budget))
	l.record(model.Action{Kind: model.ActionReset}, model.OutcomeReset, before)
	return model.OutcomeReset
}

func (l *Ledger) apply(a model.Action) model.Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	before := l.state
	next, outcome := Apply(before, a)
	l.state = next
	a.Candidate = resolve(before, a)

	switch outcome {
	case model.OutcomeRejectedBudget:
		l.logger.Warn("Not enough money",
			zap.String("candidate", a.Candidate.Name),
			zap.Int("price", a.Candidate.Price),
			zap.Int("budget", before.Budget))
	case model.OutcomeNotAvailable:
		l.logger.Warn("candidate not in pool", zap.String("candidate", a.Candidate.Name))
	case model.OutcomeNotOnTeam:
		l.logger.Debug("candidate not on team", zap.String("candidate", a.Candidate.Name))
	default:
		l.logger.Info("roster changed",
			zap.String("action", string(a.Kind)),
			zap.String("candidate", a.Candidate.Name),
			zap.Int("budget", next.Budget),
			zap.Int("team_size", len(next.Team)))
	}

	l.record(a, outcome, before)
	return outcome
}

// resolve returns the stored entry Apply acted on, or the caller's copy when
// there is none.
func resolve(before model.State, a model.Action) model.Candidate {
	list := before.Pool
	if a.Kind == model.ActionRelease {
		list = before.Team
	}
	if i := model.IndexOf(list, a.Candidate.ID); i >= 0 {
		return list[i]
	}
	return a.Candidate
}

// record must be called with l.mu held.
func (l *Ledger) record(a model.Action, outcome model.Outcome, before model.State) {
	evt := &recorder.Event{
		At:            time.Now(),
		Action:        a.Kind,
		Outcome:       outcome,
		CandidateID:   a.Candidate.ID,
		CandidateName: a.Candidate.Name,
		Price:         a.Candidate.Price,
		BudgetBefore:  before.Budget,
		BudgetAfter:   l.state.Budget,
		TotalStrength: l.state.TotalStrength(),
		TotalAgility:  l.state.TotalAgility(),
		TeamSize:      len(l.state.Team),
		PoolSize:      len(l.state.Pool),
	}
	if err := l.rec.RecordEvent(evt); err != nil {
		l.logger.Error("failed to record roster event", zap.Error(err))
	}
}

// State returns a copy of the current state.
func (l *Ledger) State() model.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Snapshot returns a copy of the current state with the aggregates filled in.
func (l *Ledger) Snapshot() model.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.state.Clone()
	return model.Snapshot{
		Pool:          s.Pool,
		Team:          s.Team,
		Budget:        s.Budget,
		InitialBudget: l.initialBudget,
		TotalStrength: s.TotalStrength(),
		TotalAgility:  s.TotalAgility(),
		UpdatedAt:     time.Now(),
	}
}

// Budget returns the money left to spend.
func (l *Ledger) Budget() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Budget
}

// TotalStrength sums strength over the current team.
func (l *Ledger) TotalStrength() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.TotalStrength()
}

// TotalAgility sums agility over the current team.
func (l *Ledger) TotalAgility() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.TotalAgility()
}

// FindAvailable looks up a pool candidate by name, ignoring case.
func (l *Ledger) FindAvailable(name string) (model.Candidate, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return findByName(l.state.Pool, name)
}

// FindOnTeam looks up a team member by name, ignoring case.
func (l *Ledger) FindOnTeam(name string) (model.Candidate, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return findByName(l.state.Team, name)
}

func findByName(list []model.Candidate, name string) (model.Candidate, bool) {
	name = strings.TrimSpace(name)
	for _, c := range list {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Candidate{}, false
}
