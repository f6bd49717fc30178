package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/catalog"
	"github.com/glenveagh/gardenledger/internal/ledger"
	"github.com/glenveagh/gardenledger/internal/tui"
)

// dateLayout is the accepted format for --date flags.
const dateLayout = "2006-01-02"

func newPracticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Browse and adopt sustainable practices",
	}
	cmd.AddCommand(newPracticeListCmd(), newPracticeAddCmd(), newPracticeRemoveCmd())
	return cmd
}

func newPracticeListCmd() *cobra.Command {
	var categoryFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog practices and their adoption state",
		Example: `  gardenledger practice list
  gardenledger practice list --category "Water Conservation"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPracticeList(cmd, categoryFilter)
		},
	}

	cmd.Flags().StringVarP(&categoryFilter, "category", "c", "", "only show one category")
	return cmd
}

// practiceListing is the JSON shape of one listed practice.
type practiceListing struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Impact     string   `json:"impact"`
	Difficulty string   `json:"difficulty"`
	SDGs       []string `json:"sdgs"`
	Active     bool     `json:"active"`
}

func runPracticeList(cmd *cobra.Command, categoryFilter string) error {
	a := appFromCmd(cmd)
	progress := a.service.Progress()

	if a.jsonOut {
		var listings []practiceListing
		for _, cat := range catalog.Categories() {
			if categoryFilter != "" && !strings.EqualFold(cat.Name, categoryFilter) {
				continue
			}
			for _, p := range cat.Practices {
				listings = append(listings, practiceListing{
					ID:         p.ID,
					Name:       p.Name,
					Category:   cat.Name,
					Impact:     string(p.Impact),
					Difficulty: string(p.Difficulty),
					SDGs:       p.SDGs,
					Active:     progress.HasPractice(p.ID),
				})
			}
		}
		return printJSON(cmd, listings)
	}

	matched := false
	for _, cat := range catalog.Categories() {
		if categoryFilter != "" && !strings.EqualFold(cat.Name, categoryFilter) {
			continue
		}
		matched = true
		cmd.Println(tui.HeaderStyle.Render(cat.Name))
		for _, p := range cat.Practices {
			mark := " "
			if progress.HasPractice(p.ID) {
				mark = "✓"
			}
			cmd.Printf("  [%s] %-10s %-40s %s/%s\n", mark, p.ID, p.Name, p.Impact, p.Difficulty)
		}
		cmd.Println()
	}
	if !matched {
		return fmt.Errorf("no category matching %q", categoryFilter)
	}

	cmd.Println(tui.RenderCategoryCompletions(ledger.CategoryCompletions(progress)))
	return nil
}

func newPracticeAddCmd() *cobra.Command {
	var (
		dateFlag string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add <practice-id>",
		Short: "Mark a catalog practice as adopted",
		Long: `Mark a catalog practice as adopted. Adoption adds the practice's impact
points to each SDG it maps to and 10 points to the overall score. Adding a
practice that is already active changes nothing.`,
		Example: `  gardenledger practice add water-1
  gardenledger practice add soil-1 --date 2026-03-01 --notes "pallet bays by the shed"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			implementedOn, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			a := appFromCmd(cmd)
			progress, added, err := a.service.AddPractice(args[0], implementedOn, notes)
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd, progress)
			}
			if !added {
				cmd.Printf("%s is already active\n", args[0])
				return nil
			}
			practice, _ := catalog.Lookup(args[0])
			cmd.Printf("Added %q. Score: %d/100 (%s)\n",
				practice.Name, progress.Score, ledger.ScoreLevel(progress.Score))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "implementation date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text note stored with the practice")
	return cmd
}

func newPracticeRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <practice-id>",
		Short: "Mark an adopted practice as dropped",
		Long: `Mark an adopted practice as dropped, reversing the score and SDG points
its adoption granted. Removing a practice that is not active changes
nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFromCmd(cmd)
			progress, removed, err := a.service.RemovePractice(args[0])
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd, progress)
			}
			if !removed {
				cmd.Printf("%s was not active\n", args[0])
				return nil
			}
			cmd.Printf("Removed %s. Score: %d/100\n", args[0], progress.Score)
			return nil
		},
	}
	return cmd
}

// parseDateFlag parses a --date value, defaulting to now when empty.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", value, err)
	}
	return parsed, nil
}
