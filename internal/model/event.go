package model

// ActionKind names a ledger transition.
type ActionKind string

const (
	ActionRecruit ActionKind = "RECRUIT"
	ActionRelease ActionKind = "RELEASE"
	ActionReset   ActionKind = "RESET"
)

// Action is a requested transition against a candidate.
type Action struct {
	Kind      ActionKind
	Candidate Candidate
}

// Outcome reports what a transition did.
type Outcome string

const (
	OutcomeRecruited      Outcome = "RECRUITED"
	OutcomeRejectedBudget Outcome = "REJECTED_BUDGET"
	OutcomeNotAvailable   Outcome = "NOT_AVAILABLE"
	OutcomeReleased       Outcome = "RELEASED"
	OutcomeNotOnTeam      Outcome = "NOT_ON_TEAM"
	OutcomeReset          Outcome = "RESET"
	OutcomeUnknownAction  Outcome = "UNKNOWN_ACTION"
)

// Changed reports whether the outcome mutated state.
func (o Outcome) Changed() bool {
	switch o {
	case OutcomeRecruited, OutcomeReleased, OutcomeReset:
		return true
	}
	return false
}
