package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show player stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			stats, err := svc.Stats()
			if err != nil {
				return err
			}

			lastLogin := "never"
			if stats.LastLogin != nil {
				lastLogin = stats.LastLogin.String()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Stats"))
			fmt.Fprintln(out, ui.LabelValue("Player", stats.PlayerName))
			fmt.Fprintln(out, ui.LabelValue("Level", stats.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next level at %d, %d to go)", stats.TotalExp, stats.NextLevelAt, stats.XPToNext)))
			fmt.Fprintln(out, ui.LabelValue("Streak", ui.StreakText(stats.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Last Login", lastLogin))
			return nil
		},
	}

	return cmd
}
