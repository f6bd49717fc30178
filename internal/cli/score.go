package cli

import (
	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/ledger"
	"github.com/glenveagh/gardenledger/internal/tui"
)

// scoreReport is the JSON shape of the score command's output.
type scoreReport struct {
	Score               int                         `json:"score"`
	Level               string                      `json:"level"`
	SDGImpactPercentage int                         `json:"sdg_impact_percentage"`
	SDGScores           map[string]float64          `json:"sdg_scores"`
	ActivePractices     int                         `json:"active_practices"`
	NetCarbon           ledger.CarbonImpact         `json:"net_carbon"`
	Categories          []ledger.CategoryCompletion `json:"categories"`
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the sustainability score and derived metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFromCmd(cmd)
			progress := a.service.Progress()

			if a.jsonOut {
				return printJSON(cmd, scoreReport{
					Score:               progress.Score,
					Level:               ledger.ScoreLevel(progress.Score),
					SDGImpactPercentage: ledger.SDGImpactPercentage(progress),
					SDGScores:           progress.SDGScores,
					ActivePractices:     len(progress.ActivePractices),
					NetCarbon:           ledger.NetCarbonImpact(progress),
					Categories:          ledger.CategoryCompletions(progress),
				})
			}

			cmd.Println(tui.RenderScoreSummary(progress, summaryWidth(cmd)))
			cmd.Println(tui.RenderCategoryCompletions(ledger.CategoryCompletions(progress)))
			return nil
		},
	}
}

// summaryWidth picks a render width for boxed output.
func summaryWidth(_ *cobra.Command) int {
	const defaultSummaryWidth = 72
	return defaultSummaryWidth
}
