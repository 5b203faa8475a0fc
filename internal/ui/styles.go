// Package ui is the interactive terminal front end for the roster ledger.
// It holds no roster state of its own; after every action it re-reads a
// snapshot from the ledger and redraws.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6b7280")
	Border      = lipgloss.Color("#2a3850")
	Destructive = lipgloss.Color("#e53935")
	Info        = lipgloss.Color("#2196F3")
)

// Styles groups the lipgloss styles used by the model.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Stats        lipgloss.Style
	FocusedPane  lipgloss.Style
	BlurredPane  lipgloss.Style
	Placeholder  lipgloss.Style
	StatusOK     lipgloss.Style
	StatusReject lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Header:       lipgloss.NewStyle().Bold(true),
		Stats:        lipgloss.NewStyle().Foreground(Info),
		FocusedPane:  pane.BorderForeground(Primary),
		BlurredPane:  pane.BorderForeground(Border),
		Placeholder:  lipgloss.NewStyle().Italic(true).Foreground(Muted),
		StatusOK:     lipgloss.NewStyle().Foreground(Primary),
		StatusReject: lipgloss.NewStyle().Foreground(Destructive),
	}
}
