package roster

import "ZombieFighters/internal/model"

// Apply computes the state that results from a, leaving s untouched.
// When the outcome does not change state the returned value is s itself.
func Apply(s model.State, a model.Action) (model.State, model.Outcome) {
	switch a.Kind {
	case model.ActionRecruit:
		return recruit(s, a.Candidate)
	case model.ActionRelease:
		return release(s, a.Candidate)
	default:
		return s, model.OutcomeUnknownAction
	}
}

func recruit(s model.State, c model.Candidate) (model.State, model.Outcome) {
	idx := model.IndexOf(s.Pool, c.ID)
	if idx < 0 {
		return s, model.OutcomeNotAvailable
	}
	picked := s.Pool[idx]
	if s.Budget < picked.Price {
		return s, model.OutcomeRejectedBudget
	}

	next := model.State{
		Pool:   make([]model.Candidate, 0, len(s.Pool)-1),
		Team:   make([]model.Candidate, 0, len(s.Team)+1),
		Budget: s.Budget - picked.Price,
	}
	next.Pool = append(next.Pool, s.Pool[:idx]...)
	next.Pool = append(next.Pool, s.Pool[idx+1:]...)
	next.Team = append(next.Team, s.Team...)
	next.Team = append(next.Team, picked)
	return next, model.OutcomeRecruited
}

// release removes the first team entry carrying c's ID.
func release(s model.State, c model.Candidate) (model.State, model.Outcome) {
	idx := model.IndexOf(s.Team, c.ID)
	if idx < 0 {
		return s, model.OutcomeNotOnTeam
	}
	dropped := s.Team[idx]

	next := model.State{
		Pool:   make([]model.Candidate, 0, len(s.Pool)+1),
		Team:   make([]model.Candidate, 0, len(s.Team)-1),
		Budget: s.Budget + dropped.Price,
	}
	next.Team = append(next.Team, s.Team[:idx]...)
	next.Team = append(next.Team, s.Team[idx+1:]...)
	next.Pool = append(next.Pool, s.Pool...)
	next.Pool = append(next.Pool, dropped)
	return next, model.OutcomeReleased
}
