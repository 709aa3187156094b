package root

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/engine"
	"github.com/abhi23s/productivity-tracker/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Record today's login (resolves due tasks, advances the streak)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())

			res, err := svc.Login(promptResolver(in, out))
			if err != nil {
				return err
			}

			for _, outcome := range res.Outcomes {
				if outcome.Completed {
					line := fmt.Sprintf("%s %s %s", ui.Good.Render(ui.IconDone+" Completed"), outcome.Task.Name,
						ui.Muted.Render(fmt.Sprintf("(+%d XP)", outcome.Progress.XPGained)))
					fmt.Fprintln(out, line)
					if outcome.Progress.LevelUp {
						fmt.Fprintf(out, "%s %s Level %d!\n", ui.BadgeLevelUp, ui.IconTrophy, outcome.Progress.LevelAfter)
					}
				} else {
					fmt.Fprintf(out, "%s %s moved to incomplete tasks\n", ui.Warn.Render(ui.IconWarn), outcome.Task.Name)
				}
			}

			switch {
			case res.ClockSkew:
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Login date is before the last recorded login; streak left untouched."))
			case res.First:
				fmt.Fprintf(out, "%s Welcome! Streak started: %s\n", ui.Good.Render(ui.IconDone+" Logged in."), ui.StreakText(res.Streak))
			case res.SameDay:
				fmt.Fprintf(out, "%s Already counted today. Streak: %s\n", ui.Good.Render(ui.IconDone+" Logged in."), ui.StreakText(res.Streak))
			case res.Reset:
				fmt.Fprintf(out, "%s Streak reset: %s\n", ui.Warn.Render(ui.IconWarn+" Missed a day."), ui.StreakText(res.Streak))
			default:
				fmt.Fprintf(out, "%s Streak: %s\n", ui.Good.Render(ui.IconDone+" Logged in."), ui.StreakText(res.Streak))
			}
			return nil
		},
	}

	return cmd
}

// promptResolver asks the user about each due task: completed or not, and at
// what difficulty and time when completed. Validation errors re-prompt.
func promptResolver(in *bufio.Reader, out io.Writer) engine.DueTaskResolver {
	return func(task engine.DueTask) (engine.DueResolution, error) {
		fmt.Fprintf(out, "\n%s %s %s\n", ui.IconClock, ui.Key.Render("Task due:"), fmt.Sprintf("%s (due %s)", task.Name, task.Due))

		answer, err := promptLine(in, out, "Did you complete this task? (y/n): ")
		if err != nil {
			return engine.DueResolution{}, err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			return engine.DueResolution{}, nil
		}

		var diff engine.Difficulty
		for {
			raw, err := promptLine(in, out, "Enter the difficulty (Easy/Medium/Hard/Legendary): ")
			if err != nil {
				return engine.DueResolution{}, err
			}
			diff, err = engine.ParseDifficulty(raw)
			if err == nil {
				break
			}
			fmt.Fprintln(out, ui.Bad.Render("Please enter a valid difficulty!"))
		}

		var minutes int
		for {
			raw, err := promptLine(in, out, "Time spent (minutes): ")
			if err != nil {
				return engine.DueResolution{}, err
			}
			minutes, err = strconv.Atoi(raw)
			if err == nil && minutes >= 0 {
				break
			}
			fmt.Fprintln(out, ui.Bad.Render("Please enter a valid number!"))
		}

		return engine.DueResolution{Completed: true, Difficulty: diff, TimeSpent: minutes}, nil
	}
}

func promptLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
