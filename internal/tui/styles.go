// Package tui implements the interactive dashboard and the styled summary
// rendering shared with plain CLI output.
package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles. Colors stay in the ANSI 16 range so they degrade
// sensibly on basic terminals.
//
//nolint:gochecknoglobals // Styles are package-wide display constants.
var (
	// HeaderStyle renders section headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().Bold(true)

	// GoodStyle renders positive figures (savings, improving trends).
	GoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// WarningStyle renders negative figures (emissions, declining trends).
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// InfoStyle renders neutral notices.
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	// BoxStyle wraps summary content in a rounded border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// Default dashboard dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)
