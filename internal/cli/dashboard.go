package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/events"
	"github.com/glenveagh/gardenledger/internal/tui"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Browse and toggle practices interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFromCmd(cmd)

			model := tui.NewDashboardModel(a.service)
			program := tea.NewProgram(model, tea.WithAltScreen())

			// Relay bus events into the program so mutations made by any
			// component refresh the dashboard.
			unsubscribe := a.bus.Subscribe(events.TopicDataChanged, func(events.Topic, events.Payload) {
				program.Send(tui.RefreshMsg{})
			})
			defer unsubscribe()

			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}
}
