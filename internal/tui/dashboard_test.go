package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glenveagh/gardenledger/internal/catalog"
	"github.com/glenveagh/gardenledger/internal/events"
	"github.com/glenveagh/gardenledger/internal/ledger"
)

func newTestDashboard(t *testing.T) DashboardModel {
	t.Helper()
	store, err := ledger.NewStore(filepath.Join(t.TempDir(), "ledger.json"), zerolog.Nop())
	require.NoError(t, err)
	service := ledger.NewService(store, events.NewBus(zerolog.Nop()), zerolog.Nop())
	return NewDashboardModel(service)
}

func TestNewDashboardModel(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t)
	assert.Len(t, m.rows, catalog.PracticeCount())
	assert.Equal(t, 0, m.progress.Score)
}

func TestDashboard_ToggleSelected(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t)

	// Toggle the first row on.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(DashboardModel)

	first := m.rows[0].practice
	assert.True(t, m.progress.HasPractice(first.ID))
	assert.Contains(t, m.status, "Added")

	// Toggle it back off.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(DashboardModel)

	assert.False(t, m.progress.HasPractice(first.ID))
	assert.Contains(t, m.status, "Removed")
	assert.Equal(t, 0, m.progress.Score)
}

func TestDashboard_RefreshMsg(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t)

	// Mutate behind the model's back, as another component would.
	_, _, err := m.service.AddPractice("water-1", time.Now(), "")
	require.NoError(t, err)
	assert.False(t, m.progress.HasPractice("water-1"), "stale before refresh")

	updated, _ := m.Update(RefreshMsg{})
	m = updated.(DashboardModel)

	assert.True(t, m.progress.HasPractice("water-1"))
	assert.Equal(t, 10, m.progress.Score)
}

func TestDashboard_Quit(t *testing.T) {
	t.Parallel()

	m := newTestDashboard(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(DashboardModel)

	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestRenderScoreSummary(t *testing.T) {
	t.Parallel()

	progress := ledger.DefaultProgress()
	progress.Score = 40
	progress.ResourceUsage[ledger.KindCarbon] = []ledger.ResourceEntry{
		{Date: time.Now(), Amount: 10},
		{Date: time.Now(), Amount: -4},
	}

	out := RenderScoreSummary(progress, 80)

	assert.Contains(t, out, "SUSTAINABILITY SUMMARY")
	assert.Contains(t, out, "40/100")
	assert.Contains(t, out, "growing")
	assert.Contains(t, out, "6.0 kg CO2e")
	// 6 kg is above threshold, so an equivalency line appears.
	assert.Contains(t, out, "driving")
}

func TestRenderCategoryCompletions(t *testing.T) {
	t.Parallel()

	progress := ledger.DefaultProgress()
	progress.ActivePractices = []ledger.ActivePractice{{PracticeID: "water-1"}}

	out := RenderCategoryCompletions(ledger.CategoryCompletions(progress))

	assert.Contains(t, out, "PRACTICE ADOPTION")
	assert.Contains(t, out, "Water Conservation")
	assert.Contains(t, out, "25%")
}
