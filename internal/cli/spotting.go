package cli

import (
	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/ledger"
	"github.com/glenveagh/gardenledger/internal/tui"
)

func newSpottingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spotting",
		Short: "Record and list wildlife spottings",
	}
	cmd.AddCommand(newSpottingAddCmd(), newSpottingListCmd())
	return cmd
}

func newSpottingAddCmd() *cobra.Command {
	var (
		category string
		location string
		notes    string
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <species>",
		Short: "Record a wildlife sighting",
		Example: `  gardenledger spotting add "Hedgehog" --category mammal --location "under the beech hedge"
  gardenledger spotting add "Red admiral" --category butterfly`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			a := appFromCmd(cmd)
			progress, err := a.service.AddWildlifeSpotting(ledger.WildlifeSpotting{
				Species:  args[0],
				Category: category,
				Date:     date,
				Notes:    notes,
				Location: location,
			})
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd, progress.WildlifeSpottings[len(progress.WildlifeSpottings)-1])
			}
			cmd.Printf("Recorded %s (%d spottings so far)\n", args[0], len(progress.WildlifeSpottings))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "kind of creature (bird, mammal, insect...)")
	cmd.Flags().StringVarP(&location, "location", "l", "", "where in the garden")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text note")
	cmd.Flags().StringVar(&dateFlag, "date", "", "sighting date (YYYY-MM-DD, default today)")
	return cmd
}

func newSpottingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded wildlife sightings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFromCmd(cmd)
			progress := a.service.Progress()

			if a.jsonOut {
				return printJSON(cmd, progress.WildlifeSpottings)
			}

			if len(progress.WildlifeSpottings) == 0 {
				cmd.Println("No wildlife spottings recorded yet.")
				return nil
			}

			cmd.Println(tui.HeaderStyle.Render("WILDLIFE SPOTTINGS"))
			for _, s := range progress.WildlifeSpottings {
				line := s.Date.Format(dateLayout) + "  " + s.Species
				if s.Category != "" {
					line += " (" + s.Category + ")"
				}
				if s.Location != "" {
					line += " - " + s.Location
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}
