package ui

import (
	"strings"
	"testing"

	"ZombieFighters/internal/roster"
	"ZombieFighters/internal/seed"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(budget int) (Model, *roster.Ledger) {
	l := roster.NewLedger(seed.Candidates(), budget, zap.NewNop(), nil)
	return New(l), l
}

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(100)

	assert.Equal(t, PanePool, m.Focus())
	view := m.View()
	assert.Contains(t, view, "Zombie Fighters")
	assert.Contains(t, view, "Money: 100")
	assert.Contains(t, view, "Pick some team members")
	assert.Contains(t, view, "Survivor")
}

func TestModel_EnterRecruitsHighlighted(t *testing.T) {
	m, l := newTestModel(100)

	m = send(t, m, enter)

	snap := m.Snapshot()
	require.Len(t, snap.Team, 1)
	assert.Equal(t, "Survivor", snap.Team[0].Name)
	assert.Equal(t, 88, snap.Budget)
	assert.Equal(t, 6, snap.TotalStrength)
	assert.Equal(t, 4, snap.TotalAgility)
	assert.Equal(t, 88, l.Budget())
	assert.Equal(t, "Survivor joined the team (money left: 88)", m.Status())
	assert.NotContains(t, m.View(), "Pick some team members")
}

func TestModel_NavigateAndRecruit(t *testing.T) {
	m, _ := newTestModel(100)

	m = send(t, m, down, down, enter)

	snap := m.Snapshot()
	require.Len(t, snap.Team, 1)
	assert.Equal(t, "Shadow", snap.Team[0].Name)
	assert.Len(t, snap.Pool, 9)
}

func TestModel_TabThenEnterReleases(t *testing.T) {
	m, _ := newTestModel(100)

	m = send(t, m, enter, tab)
	assert.Equal(t, PaneTeam, m.Focus())

	m = send(t, m, enter)
	snap := m.Snapshot()
	assert.Empty(t, snap.Team)
	assert.Equal(t, 100, snap.Budget)
	assert.Equal(t, "Survivor", snap.Pool[len(snap.Pool)-1].Name, "released fighter goes to the end of the pool")
	assert.Equal(t, "Survivor left the team (money left: 100)", m.Status())

	// Releasing from an empty team does nothing.
	m = send(t, m, enter)
	assert.Equal(t, 100, m.Snapshot().Budget)

	m = send(t, m, tab)
	assert.Equal(t, PanePool, m.Focus())
}

func TestModel_RejectionLeavesStateAlone(t *testing.T) {
	m, _ := newTestModel(5)
	before := m.Snapshot()

	m = send(t, m, enter)

	after := m.Snapshot()
	assert.Equal(t, before.Budget, after.Budget)
	assert.Equal(t, len(before.Pool), len(after.Pool))
	assert.Empty(t, after.Team)
	assert.True(t, strings.HasPrefix(m.Status(), "Not enough money"))
}

func TestModel_Reset(t *testing.T) {
	m, _ := newTestModel(100)

	m = send(t, m, enter, enter, runes("r"))

	snap := m.Snapshot()
	assert.Empty(t, snap.Team)
	assert.Len(t, snap.Pool, 10)
	assert.Equal(t, 100, snap.Budget)
	assert.Equal(t, "Roster reset (money: 100)", m.Status())
}

func TestModel_CursorClampedAfterLastRowLeaves(t *testing.T) {
	m, _ := newTestModel(1000)

	// Move to the last fighter and hire everyone from the bottom up.
	for i := 0; i < 9; i++ {
		m = send(t, m, down)
	}
	for i := 0; i < 10; i++ {
		m = send(t, m, enter)
	}
	snap := m.Snapshot()
	assert.Len(t, snap.Team, 10)
	assert.Empty(t, snap.Pool)

	// Enter on an empty pool is ignored.
	m = send(t, m, enter)
	assert.Len(t, m.Snapshot().Team, 10)
}

func TestModel_QuitAndHelp(t *testing.T) {
	m, _ := newTestModel(100)

	m = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModel_WindowResize(t *testing.T) {
	m, _ := newTestModel(100)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}
