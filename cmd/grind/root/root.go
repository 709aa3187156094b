package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "grind",
	Short:         "Grindstone — gamified productivity tracker",
	Long:          "Grindstone turns completed tasks into XP, levels and daily login streaks, with optional Google Calendar scheduling for future tasks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Player name (defaults to config default_user / GRIND_USER)")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogCmd(),
		newTasksCmd(),
		newStatsCmd(),
		newScheduleCmd(),
		newAuthCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
