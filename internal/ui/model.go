package ui

import (
	"fmt"
	"strconv"
	"strings"

	"ZombieFighters/internal/model"
	"ZombieFighters/internal/report"
	"ZombieFighters/internal/roster"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Pane identifies which list has focus.
type Pane int

const (
	PanePool Pane = iota
	PaneTeam
)

// Model renders the ledger as two lists: fighters for hire and the current team.
type Model struct {
	ledger *roster.Ledger
	styles Styles
	keys   KeyMap
	help   help.Model

	pool     table.Model
	team     table.Model
	poolRows []model.Candidate
	teamRows []model.Candidate
	snap     model.Snapshot

	focus    Pane
	status   string
	rejected bool
	width    int
	height   int
	quitting bool
}

// New creates a Model bound to the ledger with the pool focused.
func New(l *roster.Ledger) Model {
	m := Model{
		ledger: l,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		pool:   newTable(true),
		team:   newTable(false),
		focus:  PanePool,
	}
	m.refresh()
	return m
}

func newTable(focused bool) table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 14},
			{Title: "Price", Width: 6},
			{Title: "Str", Width: 4},
			{Title: "Agi", Width: 4},
			{Title: "Image", Width: 36},
		}),
		table.WithFocused(focused),
		table.WithHeight(10),
	)
}

func toRows(list []model.Candidate) []table.Row {
	rows := make([]table.Row, 0, len(list))
	for _, c := range list {
		rows = append(rows, table.Row{
			c.Name,
			strconv.Itoa(c.Price),
			strconv.Itoa(c.Strength),
			strconv.Itoa(c.Agility),
			c.ImageRef,
		})
	}
	return rows
}

// refresh re-reads the ledger and rebuilds both tables.
func (m *Model) refresh() {
	m.snap = m.ledger.Snapshot()
	m.poolRows = m.snap.Pool
	m.teamRows = m.snap.Team
	m.pool.SetRows(toRows(m.poolRows))
	m.team.SetRows(toRows(m.teamRows))
	clampCursor(&m.pool, len(m.poolRows))
	clampCursor(&m.team, len(m.teamRows))
}

func clampCursor(t *table.Model, n int) {
	if t.Cursor() >= n {
		t.SetCursor(max(n-1, 0))
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		rows := max((msg.Height-14)/2, 3)
		m.pool.SetHeight(rows)
		m.team.SetHeight(rows)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			m.toggleFocus()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			outcome := m.ledger.Reset()
			m.setStatus(outcome, model.Candidate{})
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			m.selectCurrent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == PanePool {
		m.pool, cmd = m.pool.Update(msg)
	} else {
		m.team, cmd = m.team.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == PanePool {
		m.focus = PaneTeam
		m.pool.Blur()
		m.team.Focus()
	} else {
		m.focus = PanePool
		m.team.Blur()
		m.pool.Focus()
	}
}

// selectCurrent recruits the highlighted fighter or releases the highlighted
// team member, passing the exact candidate value shown in that row.
func (m *Model) selectCurrent() {
	var (
		c       model.Candidate
		outcome model.Outcome
	)
	switch m.focus {
	case PanePool:
		i := m.pool.Cursor()
		if i < 0 || i >= len(m.poolRows) {
			return
		}
		c = m.poolRows[i]
		outcome = m.ledger.Recruit(c)
	case PaneTeam:
		i := m.team.Cursor()
		if i < 0 || i >= len(m.teamRows) {
			return
		}
		c = m.teamRows[i]
		outcome = m.ledger.Release(c)
	}
	m.setStatus(outcome, c)
	m.refresh()
}

func (m *Model) setStatus(outcome model.Outcome, c model.Candidate) {
	m.status = report.FormatOutcome(outcome, c, m.ledger.Budget())
	m.rejected = !outcome.Changed()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Zombie Fighters"))
	b.WriteString("\n")
	b.WriteString(m.styles.Stats.Render(fmt.Sprintf("Money: %d   Team Strength: %d   Team Agility: %d",
		m.snap.Budget, m.snap.TotalStrength, m.snap.TotalAgility)))
	b.WriteString("\n\n")

	teamBody := m.team.View()
	if len(m.teamRows) == 0 {
		teamBody = m.styles.Placeholder.Render(report.EmptyTeamText)
	}
	b.WriteString(m.pane("Team", teamBody, m.focus == PaneTeam))
	b.WriteString("\n")
	b.WriteString(m.pane("Fighters", m.pool.View(), m.focus == PanePool))
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.StatusOK
		if m.rejected {
			style = m.styles.StatusReject
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) pane(title, body string, focused bool) string {
	style := m.styles.BlurredPane
	if focused {
		style = m.styles.FocusedPane
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, m.styles.Header.Render(title), body))
}

// Focus reports which list currently has focus.
func (m Model) Focus() Pane { return m.focus }

// Status returns the last action message.
func (m Model) Status() string { return m.status }

// Snapshot returns the state last drawn.
func (m Model) Snapshot() model.Snapshot { return m.snap }

// Run starts the interactive program and blocks until the user quits.
func Run(l *roster.Ledger, opts ...tea.ProgramOption) error {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	_, err := tea.NewProgram(New(l), opts...).Run()
	return err
}
