package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhi23s/productivity-tracker/internal/engine"
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	stats   *engine.StatsView
	report  []engine.DifficultyReport
	pending *engine.PendingView
	log     table.Model

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	stats   *engine.StatsView
	report  []engine.DifficultyReport
	pending *engine.PendingView
	err     error
}

func newBoardModel(svc *engine.Service) boardModel {
	columns := []table.Column{
		{Title: "Difficulty", Width: 10},
		{Title: "Task", Width: 28},
		{Title: "Count", Width: 6},
		{Title: "Minutes", Width: 8},
		{Title: "Last Done", Width: 11},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)

	return boardModel{
		svc:     svc,
		log:     t,
		loading: true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.Stats()
		if err != nil {
			return loadedMsg{err: err}
		}
		report, err := m.svc.TaskReport()
		if err != nil {
			return loadedMsg{err: err}
		}
		pending, err := m.svc.PendingTasks()
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{stats: stats, report: report, pending: pending}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.report = msg.report
		m.pending = msg.pending
		m.log.SetRows(ledgerRows(msg.report))
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func ledgerRows(report []engine.DifficultyReport) []table.Row {
	var rows []table.Row
	for _, group := range report {
		for _, task := range group.Tasks {
			rows = append(rows, table.Row{
				string(group.Difficulty),
				task.Name,
				strconv.Itoa(task.Count),
				strconv.Itoa(task.TotalTime),
				task.LastCompleted.String(),
			})
		}
	}
	return rows
}
