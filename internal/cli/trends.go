package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/ledger"
	"github.com/glenveagh/gardenledger/internal/tui"
)

// trendReport is the JSON shape of one resource trend.
type trendReport struct {
	Kind    string       `json:"kind"`
	Entries int          `json:"entries"`
	Trend   ledger.Trend `json:"trend"`
}

func newTrendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trends [kind]",
		Short: "Classify the direction of each resource series",
		Long: `Compare the most recent samples of each resource series against the
window before them. For water, carbon, and energy a decrease is improving;
for compost, harvest, and waste an increase is.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := ledger.Kinds()
			if len(args) == 1 {
				kind := ledger.ResourceKind(strings.ToLower(args[0]))
				if !ledger.ValidKind(kind) {
					return fmt.Errorf("unknown resource kind %q (want one of %s)", args[0], kindList())
				}
				kinds = []ledger.ResourceKind{kind}
			}

			a := appFromCmd(cmd)
			progress := a.service.Progress()

			reports := make([]trendReport, 0, len(kinds))
			for _, kind := range kinds {
				reports = append(reports, trendReport{
					Kind:    string(kind),
					Entries: len(progress.ResourceUsage[kind]),
					Trend:   ledger.ResourceTrend(progress, kind),
				})
			}

			if a.jsonOut {
				return printJSON(cmd, reports)
			}

			cmd.Println(tui.HeaderStyle.Render("RESOURCE TRENDS"))
			for _, r := range reports {
				cmd.Printf("%-10s %s  (%d entries)\n", r.Kind, renderTrend(r.Trend), r.Entries)
			}
			return nil
		},
	}
}

func renderTrend(trend ledger.Trend) string {
	switch trend {
	case ledger.TrendImproving:
		return tui.GoodStyle.Render(string(trend))
	case ledger.TrendDeclining:
		return tui.WarningStyle.Render(string(trend))
	default:
		return tui.LabelStyle.Render(string(trend))
	}
}
