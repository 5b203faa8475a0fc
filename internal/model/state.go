package model

import "time"

// State is the complete ledger state. Aggregates are never stored; they are
// summed from Team on every read.
type State struct {
	Pool   []Candidate `json:"pool"`
	Team   []Candidate `json:"team"`
	Budget int         `json:"budget"`
}

// TotalStrength sums strength over the team.
func (s State) TotalStrength() int {
	total := 0
	for _, c := range s.Team {
		total += c.Strength
	}
	return total
}

// TotalAgility sums agility over the team.
func (s State) TotalAgility() int {
	total := 0
	for _, c := range s.Team {
		total += c.Agility
	}
	return total
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	pool := make([]Candidate, len(s.Pool))
	copy(pool, s.Pool)
	team := make([]Candidate, len(s.Team))
	copy(team, s.Team)
	return State{Pool: pool, Team: team, Budget: s.Budget}
}

// Snapshot is the read-only view handed to renderers, recorders and the
// snapshot file.
type Snapshot struct {
	Pool          []Candidate `json:"pool"`
	Team          []Candidate `json:"team"`
	Budget        int         `json:"budget"`
	InitialBudget int         `json:"initial_budget"`
	TotalStrength int         `json:"total_strength"`
	TotalAgility  int         `json:"total_agility"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
