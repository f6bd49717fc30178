package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/ledger"
)

func newRecordCmd() *cobra.Command {
	var (
		dateFlag string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "record <kind> <amount>",
		Short: "Record a resource usage sample",
		Long: `Record a dated, signed quantity against one resource series.

Kinds: water, compost, harvest, carbon, energy, waste.

For water, carbon, and energy the amount is consumption, so a negative
amount means conservation and scores positively. For compost, harvest, and
waste (diverted) a positive amount is the good direction. Unparseable
amounts are treated as zero rather than rejected.`,
		Example: `  # 40 litres of mains water used
  gardenledger record water 40

  # 3 kg of kitchen waste composted
  gardenledger record compost 3

  # 2 kWh saved against last week
  gardenledger record energy -2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := ledger.ResourceKind(strings.ToLower(args[0]))
			if !ledger.ValidKind(kind) {
				return fmt.Errorf("unknown resource kind %q (want one of %s)", args[0], kindList())
			}

			// Missing or malformed numbers fold to zero, matching the
			// aggregate behavior everywhere else.
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				amount = 0
			}

			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			metadata := map[string]string{}
			if notes != "" {
				metadata["notes"] = notes
			}

			a := appFromCmd(cmd)
			progress, err := a.service.RecordResourceUsage(kind, amount, date, metadata)
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd, progress)
			}
			cmd.Printf("Recorded %g %s. Score: %d/100, SDG impact: %d%%\n",
				amount, kind, progress.Score, ledger.SDGImpactPercentage(progress))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "sample date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text note stored with the sample")
	return cmd
}

func kindList() string {
	kinds := ledger.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
