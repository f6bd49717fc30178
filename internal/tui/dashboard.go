package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glenveagh/gardenledger/internal/catalog"
	"github.com/glenveagh/gardenledger/internal/ledger"
)

// RefreshMsg asks the dashboard to reload the ledger. The CLI forwards
// event-bus notifications into the program as RefreshMsg so that a
// mutation made anywhere shows up here.
type RefreshMsg struct{}

// practiceRow ties a table row back to its catalog practice.
type practiceRow struct {
	practice catalog.Practice
	category string
}

// DashboardModel is the Bubble Tea model for the interactive practice
// dashboard. Toggling a row drives the real mutation operations; the
// summary header recomputes from the reloaded ledger.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	service  *ledger.Service
	progress ledger.UserProgress
	rows     []practiceRow

	table  table.Model
	width  int
	height int

	status   string
	quitting bool
	err      error
}

// NewDashboardModel builds the dashboard over the given service.
func NewDashboardModel(service *ledger.Service) DashboardModel {
	m := DashboardModel{
		service:  service,
		progress: service.Progress(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.rows = buildPracticeRows()
	m.table = m.buildTable()
	return m
}

func buildPracticeRows() []practiceRow {
	var rows []practiceRow
	for _, cat := range catalog.Categories() {
		for _, p := range cat.Practices {
			rows = append(rows, practiceRow{practice: p, category: cat.Name})
		}
	}
	return rows
}

func (m DashboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "ID", Width: 10},
		{Title: "Practice", Width: 38},
		{Title: "Category", Width: 20},
		{Title: "Impact", Width: 8},
	}

	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		mark := " "
		if m.progress.HasPractice(r.practice.ID) {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			mark,
			r.practice.ID,
			r.practice.Name,
			r.category,
			string(r.practice.Impact),
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 5)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	tbl.SetStyles(styles)
	return tbl
}

// Init initializes the model (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.buildTable()
		m.table.SetCursor(cursor)
		return m, nil
	case RefreshMsg:
		m.reload()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter", " ":
		m.toggleSelected()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// toggleSelected flips the practice under the cursor through the mutation
// operations. The event bus will deliver a RefreshMsg, but the model also
// reloads directly so a headless test observes the change without a
// running program.
func (m *DashboardModel) toggleSelected() {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return
	}
	row := m.rows[cursor]

	var err error
	if m.progress.HasPractice(row.practice.ID) {
		_, _, err = m.service.RemovePractice(row.practice.ID)
		m.status = "Removed " + row.practice.Name
	} else {
		_, _, err = m.service.AddPractice(row.practice.ID, time.Now(), "")
		m.status = "Added " + row.practice.Name
	}
	if err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.reload()
	m.table.SetCursor(cursor)
}

func (m *DashboardModel) reload() {
	cursor := m.table.Cursor()
	m.progress = m.service.Progress()
	m.table = m.buildTable()
	m.table.SetCursor(cursor)
}

// View renders the dashboard (Bubble Tea interface).
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return WarningStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	sections := []string{
		RenderScoreSummary(m.progress, m.width),
		m.table.View(),
	}
	if m.status != "" {
		sections = append(sections, InfoStyle.Render(m.status))
	}
	sections = append(sections, LabelStyle.Render("enter/space toggle · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
