package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/engine"
	"github.com/abhi23s/productivity-tracker/internal/ui"
)

func newLogCmd() *cobra.Command {
	var diff string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log <task>",
		Short: "Log a completed task and earn XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}

			svc, err := openService()
			if err != nil {
				return err
			}

			res, err := svc.LogTask(engine.LogTaskInput{
				Task:       strings.Join(args, " "),
				Difficulty: difficulty,
				TimeSpent:  minutes,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %q under %s %s\n",
				ui.Good.Render(ui.IconDone+" Logged"),
				res.Task,
				ui.DifficultyText(string(res.Difficulty)),
				ui.Muted.Render(fmt.Sprintf("(%d time(s), %d min total)", res.Aggregate.Count, res.Aggregate.TotalTime)))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("XP gained", fmt.Sprintf("+%d %s", res.Progress.XPGained, ui.IconBolt)))
			if res.Progress.LevelUp {
				fmt.Fprintf(out, "%s %s Level %d! Great work!\n", ui.BadgeLevelUp, ui.IconTrophy, res.Progress.LevelAfter)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "", "Difficulty (Easy|Medium|Hard|Legendary)")
	cmd.Flags().IntVarP(&minutes, "time", "t", 0, "Time spent in minutes")
	_ = cmd.MarkFlagRequired("diff")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}
