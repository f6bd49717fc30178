// Package cli implements the gardenledger command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the gardenledger CLI.
// It wires up config, logging, the ledger service, the event bus, and the
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gardenledger",
		Short: "Track sustainable gardening practices and their impact",
		Long: `Gardenledger keeps a local ledger of the sustainable practices you have
adopted, the resources your garden uses and produces, and the carbon you
offset - then scores the lot against the UN sustainable development goals.`,
		Version: ver,
		Example: `  # See where you stand
  gardenledger score

  # Adopt a practice from the catalog
  gardenledger practice add water-1

  # Record 40 litres of mains water used (negative = conserved)
  gardenledger record water 40

  # Log a carbon offset
  gardenledger offset 12 --source "cycled to the allotment"

  # Browse and toggle practices interactively
  gardenledger dashboard`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupApp(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "emit machine-readable JSON output")
	cmd.PersistentFlags().String("ledger", "", "path to the ledger file (default ~/.gardenledger/ledger.json)")

	cmd.AddCommand(
		newPracticeCmd(),
		newRecordCmd(),
		newOffsetCmd(),
		newScoreCmd(),
		newCarbonCmd(),
		newTrendsCmd(),
		newSpottingCmd(),
		newResetCmd(),
		newDashboardCmd(),
	)

	return cmd
}

// Execute runs the CLI and returns a process exit code.
func Execute(ver string) int {
	if err := NewRootCmd(ver).Execute(); err != nil {
		return 1
	}
	return 0
}
