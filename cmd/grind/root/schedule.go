package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/calendar"
	"github.com/abhi23s/productivity-tracker/internal/ui"
)

func newScheduleCmd() *cobra.Command {
	var due string

	cmd := &cobra.Command{
		Use:   "schedule <task>",
		Short: "Schedule a future task (and mirror it to Google Calendar)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			res, err := svc.ScheduleTask(cmd.Context(), strings.Join(args, " "), due)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %q for %s\n", ui.Good.Render(ui.IconClock+" Scheduled"), res.Task, res.Due)

			switch {
			case res.CalendarErr == nil:
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconCal+" Added to Google Calendar."), ui.Muted.Render("Event ID: "+res.EventID))
			case errors.Is(res.CalendarErr, calendar.ErrNotConfigured):
				fmt.Fprintln(out, ui.Muted.Render("Calendar integration not configured; add credentials.json to enable it."))
			case errors.Is(res.CalendarErr, calendar.ErrAuthRequired):
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+res.CalendarErr.Error()))
			default:
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Calendar event failed: "+res.CalendarErr.Error()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}
