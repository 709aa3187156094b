package root

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhi23s/productivity-tracker/internal/ui"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cal := openCalendar(cfg)
			if !cal.Available() {
				return fmt.Errorf("no calendar credentials found at %s", cfg.Calendar.CredentialsFile)
			}

			url, err := cal.AuthURL()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCal, "Google Calendar authorization"))
			fmt.Fprintln(out, "Open this URL in your browser and grant access:")
			fmt.Fprintln(out, ui.Key.Render(url))

			in := bufio.NewReader(cmd.InOrStdin())
			code, err := promptLine(in, out, "Paste the authorization code: ")
			if err != nil {
				return err
			}
			if err := cal.Exchange(cmd.Context(), code); err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Calendar access authorized."))
			return nil
		},
	}

	return cmd
}
