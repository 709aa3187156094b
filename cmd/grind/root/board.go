package root

import (
	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			return tui.RunBoard(svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
