package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/ui"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the task log and scheduled tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			report, err := svc.TaskReport()
			if err != nil {
				return err
			}
			pending, err := svc.PendingTasks()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Task Log"))
			if len(report) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks logged yet."))
			}
			for _, group := range report {
				fmt.Fprintf(out, "\n%s\n", ui.DifficultyText(string(group.Difficulty)))
				for _, task := range group.Tasks {
					fmt.Fprintf(out, "- %-28s %s\n", task.Name,
						ui.Muted.Render(fmt.Sprintf("×%d, %d min, last %s", task.Count, task.TotalTime, task.LastCompleted)))
				}
			}

			if len(pending.Future) > 0 {
				fmt.Fprintf(out, "\n%s\n", ui.H2.Render(ui.IconClock+" Scheduled"))
				for _, task := range pending.Future {
					fmt.Fprintf(out, "- %-28s %s\n", task.Name, ui.Muted.Render("due "+task.Due.String()))
				}
			}
			if len(pending.Incomplete) > 0 {
				fmt.Fprintf(out, "\n%s\n", ui.H2.Render(ui.IconWarn+" Missed"))
				for _, task := range pending.Incomplete {
					fmt.Fprintf(out, "- %-28s %s\n", task.Name, ui.Bad.Render("was due "+task.Due.String()))
				}
			}
			return nil
		},
	}

	return cmd
}
