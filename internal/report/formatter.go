package report

import (
	"fmt"
	"strings"
	"time"

	"ZombieFighters/internal/model"
	"ZombieFighters/internal/recorder"
)

// EmptyTeamText is shown in place of the team list when nobody is hired.
const EmptyTeamText = "Pick some team members"

// FormatStatus formats the money and team aggregates.
func FormatStatus(snap *model.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Money: %d\n", snap.Budget))
	b.WriteString(fmt.Sprintf("Team Strength: %d\n", snap.TotalStrength))
	b.WriteString(fmt.Sprintf("Team Agility: %d\n", snap.TotalAgility))
	return b.String()
}

// FormatCandidates formats a titled list of candidates, one per line.
func FormatCandidates(title string, list []model.Candidate) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	for i, c := range list {
		b.WriteString(fmt.Sprintf("  %2d. %-13s price %3d | str %2d | agi %2d\n",
			i+1, c.Name, c.Price, c.Strength, c.Agility))
	}
	return b.String()
}

// FormatTeam formats the current team, or the placeholder when it is empty.
func FormatTeam(snap *model.Snapshot) string {
	if len(snap.Team) == 0 {
		return "Team\n  " + EmptyTeamText + "\n"
	}
	return FormatCandidates("Team", snap.Team)
}

// FormatPool formats the fighters still available for hire.
func FormatPool(snap *model.Snapshot) string {
	return FormatCandidates("Fighters", snap.Pool)
}

// FormatRoster formats the full view: status, team, then pool.
func FormatRoster(snap *model.Snapshot) string {
	return FormatStatus(snap) + "\n" + FormatTeam(snap) + "\n" + FormatPool(snap)
}

// FormatOutcome describes a transition result for the user.
func FormatOutcome(outcome model.Outcome, c model.Candidate, budget int) string {
	switch outcome {
	case model.OutcomeRecruited:
		return fmt.Sprintf("%s joined the team (money left: %d)", c.Name, budget)
	case model.OutcomeRejectedBudget:
		return fmt.Sprintf("Not enough money for %s (price %d, money %d)", c.Name, c.Price, budget)
	case model.OutcomeNotAvailable:
		return fmt.Sprintf("%s is not available", c.Name)
	case model.OutcomeReleased:
		return fmt.Sprintf("%s left the team (money left: %d)", c.Name, budget)
	case model.OutcomeNotOnTeam:
		return fmt.Sprintf("%s is not on the team", c.Name)
	case model.OutcomeReset:
		return fmt.Sprintf("Roster reset (money: %d)", budget)
	default:
		return string(outcome)
	}
}

// Markdown renders a snapshot and recent history as a markdown document.
func Markdown(snap *model.Snapshot, events []recorder.Event) string {
	var b strings.Builder

	b.WriteString("# Zombie Fighters\n\n")
	if !snap.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("_Snapshot taken %s_\n\n", snap.UpdatedAt.Format("2006-01-02 15:04:05")))
	}
	b.WriteString(fmt.Sprintf("- **Money:** %d of %d\n", snap.Budget, snap.InitialBudget))
	b.WriteString(fmt.Sprintf("- **Team Strength:** %d\n", snap.TotalStrength))
	b.WriteString(fmt.Sprintf("- **Team Agility:** %d\n\n", snap.TotalAgility))

	b.WriteString("## Team\n\n")
	if len(snap.Team) == 0 {
		b.WriteString(EmptyTeamText + "\n\n")
	} else {
		writeTable(&b, snap.Team)
	}

	b.WriteString("## Fighters\n\n")
	writeTable(&b, snap.Pool)

	if len(events) > 0 {
		b.WriteString("## Recent activity\n\n")
		for _, e := range events {
			b.WriteString(fmt.Sprintf("- %s %s %s: money %d → %d\n",
				e.At.Format(time.TimeOnly), e.Outcome, e.CandidateName, e.BudgetBefore, e.BudgetAfter))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeTable(b *strings.Builder, list []model.Candidate) {
	b.WriteString("| Name | Price | Strength | Agility |\n")
	b.WriteString("|------|------:|---------:|--------:|\n")
	for _, c := range list {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %d |\n", c.Name, c.Price, c.Strength, c.Agility))
	}
	b.WriteString("\n")
}
