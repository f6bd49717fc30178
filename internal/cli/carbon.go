package cli

import (
	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/carbon"
	"github.com/glenveagh/gardenledger/internal/ledger"
	"github.com/glenveagh/gardenledger/internal/tui"
)

// carbonReport is the JSON shape of the carbon command's output.
type carbonReport struct {
	Impact      ledger.CarbonImpact      `json:"impact"`
	Equivalency carbon.EquivalencyOutput `json:"equivalency"`
}

func newCarbonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "carbon",
		Short: "Show the garden's net carbon position",
		Long: `Partition the carbon series into emissions and reductions and translate
the net figure into real-world equivalencies.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFromCmd(cmd)
			progress := a.service.Progress()
			impact := ledger.NetCarbonImpact(progress)

			equivalency, err := carbon.Calculate(carbon.Input{Value: impact.NetImpact, Unit: "kg"})
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd, carbonReport{Impact: impact, Equivalency: equivalency})
			}

			cmd.Println(tui.HeaderStyle.Render("CARBON LEDGER"))
			cmd.Printf("Emissions:  %s\n", carbon.FormatKg(impact.Emissions))
			cmd.Printf("Reductions: %s\n", carbon.FormatKg(impact.Reductions))
			cmd.Printf("Net:        %s\n", carbon.FormatKg(impact.NetImpact))
			if !equivalency.IsEmpty() {
				cmd.Println(tui.InfoStyle.Render(equivalency.DisplayText))
			}
			return nil
		},
	}
}
