package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhi23s/productivity-tracker/internal/engine"
	"github.com/abhi23s/productivity-tracker/internal/ui"
)

// RunBoard opens the read-only dashboard: player stats, the task ledger and
// the pending/incomplete task lists.
func RunBoard(svc *engine.Service, out io.Writer) error {
	p := tea.NewProgram(newBoardModel(svc), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}

func (m boardModel) View() string {
	if m.loading {
		return ui.Muted.Render("Loading…") + "\n"
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconSparkle, "Grindstone — "+m.stats.PlayerName))
	b.WriteString("\n\n")

	b.WriteString(ui.Panel.Render(m.statsPanel()))
	b.WriteString("\n\n")

	b.WriteString(ui.PanelTitle.Render(ui.IconScroll + " Task Log"))
	b.WriteString("\n")
	if len(m.report) == 0 {
		b.WriteString(ui.Muted.Render("No tasks logged yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.log.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.pendingPanel())

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog + "  (r: refresh, q: quit)"))
	b.WriteString("\n")

	return b.String()
}

func (m boardModel) statsPanel() string {
	lastLogin := "never"
	if m.stats.LastLogin != nil {
		lastLogin = m.stats.LastLogin.String()
	}
	lines := []string{
		ui.LabelValue("Level", m.stats.Level),
		ui.LabelValue("Total XP", fmt.Sprintf("%d (next level at %d, %d to go)", m.stats.TotalExp, m.stats.NextLevelAt, m.stats.XPToNext)),
		ui.LabelValue("Streak", ui.StreakText(m.stats.Streak)),
		ui.LabelValue("Last Login", lastLogin),
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) pendingPanel() string {
	var b strings.Builder

	b.WriteString(ui.PanelTitle.Render(ui.IconClock + " Scheduled"))
	b.WriteString("\n")
	if len(m.pending.Future) == 0 {
		b.WriteString(ui.Muted.Render("Nothing scheduled."))
		b.WriteString("\n")
	} else {
		for _, task := range m.pending.Future {
			b.WriteString(fmt.Sprintf("- %s %s\n", task.Name, ui.Muted.Render("(due "+task.Due.String()+")")))
		}
	}

	if len(m.pending.Incomplete) > 0 {
		b.WriteString(ui.PanelTitle.Render(ui.IconWarn + " Missed"))
		b.WriteString("\n")
		for _, task := range m.pending.Incomplete {
			b.WriteString(fmt.Sprintf("- %s %s\n", task.Name, ui.Bad.Render("(was due "+task.Due.String()+")")))
		}
	}

	return b.String()
}
