package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the ledger and start over",
		Long: `Delete the persisted ledger document. Practices, resource usage, scores,
and spottings are all gone; the next command starts from an empty ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force && isTerminal(os.Stdin) {
				cmd.Print("This deletes all recorded progress. Continue? [y/N] ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
					cmd.Println("Aborted.")
					return nil
				}
			}

			a := appFromCmd(cmd)
			if err := a.service.Reset(); err != nil {
				return err
			}
			cmd.Println("Ledger reset.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
