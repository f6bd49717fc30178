package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/ledger"
)

func newOffsetCmd() *cobra.Command {
	var (
		source   string
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "offset <amount-kg>",
		Short: "Record a carbon offset",
		Long: `Record an estimated emissions reduction, in kg CO2e, attributable to a
gardening activity. The entry lands on the carbon series as a negative
amount tagged with its source, whatever sign you pass in.`,
		Example: `  gardenledger offset 12 --source "cycled to the allotment"
  gardenledger offset 3.5 --source "home compost instead of collection"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				amount = 0
			}

			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			a := appFromCmd(cmd)
			progress, err := a.service.RecordCarbonOffset(amount, source, date)
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd, progress)
			}
			impact := ledger.NetCarbonImpact(progress)
			cmd.Printf("Offset recorded. Net carbon: %.1f kg CO2e (%.1f emitted, %.1f reduced)\n",
				impact.NetImpact, impact.Emissions, impact.Reductions)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "what produced the offset (required)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "offset date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}
