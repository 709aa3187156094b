package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/abhi23s/productivity-tracker/internal/calendar"
	"github.com/abhi23s/productivity-tracker/internal/storage"
)

// Service owns the one in-memory player record per operation and orchestrates
// the streak, ledger, progression and due-task pieces around it. Every
// mutating call reloads the record, applies the change and writes it back.
type Service struct {
	store    storage.RecordStore
	cal      calendar.EventCreator
	username string
	today    func() storage.Date
}

func NewService(store storage.RecordStore, cal calendar.EventCreator, username string) *Service {
	if cal == nil {
		cal = calendar.Disabled{}
	}
	return &Service{
		store:    store,
		cal:      cal,
		username: NormalizeUsername(username),
		today:    storage.Today,
	}
}

// Username returns the normalized player key this service operates on.
func (s *Service) Username() string { return s.username }

func (s *Service) load() (*storage.PlayerRecord, error) {
	rec, err := s.store.Load(s.username)
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	return rec, nil
}

func (s *Service) save(rec *storage.PlayerRecord) error {
	if err := s.store.Save(rec); err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

// LoginResult reports the streak transition plus how any due tasks were
// settled during the same login.
type LoginResult struct {
	StreakResult
	Outcomes []DueOutcome
}

// Login resolves due tasks first, then advances the streak, exactly once per
// call, and persists the result. If the resolver fails the whole login is
// abandoned before any persistence.
func (s *Service) Login(resolve DueTaskResolver) (*LoginResult, error) {
	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	today := s.today()

	outcomes, err := resolveDueTasks(rec, today, resolve)
	if err != nil {
		return nil, err
	}
	streak := applyLogin(rec, today)

	if err := s.save(rec); err != nil {
		return nil, err
	}
	return &LoginResult{StreakResult: streak, Outcomes: outcomes}, nil
}

// LogTaskInput is a directly-logged completed task.
type LogTaskInput struct {
	Task       string
	Difficulty Difficulty
	TimeSpent  int
}

// LogResult is the confirmation snapshot for one logged task.
type LogResult struct {
	Task       string
	Difficulty Difficulty
	Aggregate  storage.TaskAggregate
	Progress   ProgressResult
}

// LogTask records a completed task in the ledger and awards experience in one
// transaction: both succeed or nothing is persisted.
func (s *Service) LogTask(in LogTaskInput) (*LogResult, error) {
	if !in.Difficulty.IsValid() {
		return nil, InvalidDifficultyError{Input: string(in.Difficulty)}
	}
	if in.TimeSpent < 0 {
		return nil, InvalidTimeError{Minutes: in.TimeSpent}
	}
	name := NormalizeTaskName(in.Task)
	if name == "" {
		return nil, errors.New("task name is required")
	}

	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	today := s.today()

	agg := applyTaskLog(rec, in.Difficulty, name, in.TimeSpent, today)
	prog, err := applyCompletion(rec, in.Difficulty, in.TimeSpent)
	if err != nil {
		return nil, err
	}

	if err := s.save(rec); err != nil {
		return nil, err
	}
	return &LogResult{Task: name, Difficulty: in.Difficulty, Aggregate: agg, Progress: prog}, nil
}

// ScheduleResult reports the local bookkeeping and the remote calendar
// outcome separately: a calendar failure never drops the scheduled task.
type ScheduleResult struct {
	Task        string
	Due         storage.Date
	EventID     string
	CalendarErr error
}

// ScheduleTask records a pending future task and then attempts to mirror it
// as an all-day calendar event. The local record is persisted regardless of
// the remote outcome.
func (s *Service) ScheduleTask(ctx context.Context, rawName, rawDue string) (*ScheduleResult, error) {
	name := NormalizeTaskName(rawName)
	if name == "" {
		return nil, errors.New("task name is required")
	}
	due, err := storage.ParseDate(rawDue)
	if err != nil {
		return nil, InvalidDateError{Input: rawDue, Err: err}
	}

	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	applySchedule(rec, name, due)
	if err := s.save(rec); err != nil {
		return nil, err
	}

	res := &ScheduleResult{Task: name, Due: due}
	if s.cal.Available() {
		id, err := s.cal.CreateAllDayEvent(ctx, name, due)
		if err != nil {
			res.CalendarErr = err
		} else {
			res.EventID = id
		}
	} else {
		res.CalendarErr = calendar.ErrNotConfigured
	}
	return res, nil
}

// StatsView is a display snapshot of the player's progression.
type StatsView struct {
	PlayerName  string
	Level       int
	LastLogin   *storage.Date
	Streak      int
	TotalExp    int
	NextLevelAt int
	XPToNext    int
}

func (s *Service) Stats() (*StatsView, error) {
	rec, err := s.load()
	if err != nil {
		return nil, err
	}

	next := XPRequiredForLevel(rec.Level + 1)
	toNext := next - rec.TotalExp
	if toNext < 0 {
		toNext = 0
	}
	view := &StatsView{
		PlayerName:  rec.PlayerName,
		Level:       rec.Level,
		Streak:      rec.Streak,
		TotalExp:    rec.TotalExp,
		NextLevelAt: next,
		XPToNext:    toNext,
	}
	if rec.LastLogin != nil {
		d := *rec.LastLogin
		view.LastLogin = &d
	}
	return view, nil
}

// TaskRow is one ledger entry in a report.
type TaskRow struct {
	Name string
	storage.TaskAggregate
}

// DifficultyReport groups the ledger rows of one difficulty, tasks sorted by
// name.
type DifficultyReport struct {
	Difficulty Difficulty
	Tasks      []TaskRow
}

// TaskReport returns the completed-task ledger grouped by difficulty in
// canonical order. Difficulties with no entries are skipped.
func (s *Service) TaskReport() ([]DifficultyReport, error) {
	rec, err := s.load()
	if err != nil {
		return nil, err
	}

	var report []DifficultyReport
	for _, d := range Difficulties() {
		byName := rec.CompletedTasks[string(d)]
		if len(byName) == 0 {
			continue
		}
		rows := make([]TaskRow, 0, len(byName))
		for name, agg := range byName {
			rows = append(rows, TaskRow{Name: name, TaskAggregate: agg})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
		report = append(report, DifficultyReport{Difficulty: d, Tasks: rows})
	}
	return report, nil
}

// PendingView lists scheduled tasks still waiting and the ones that passed
// their due date unresolved, each sorted by due date then name.
type PendingView struct {
	Future     []DueTask
	Incomplete []DueTask
}

func (s *Service) PendingTasks() (*PendingView, error) {
	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	return &PendingView{
		Future:     sortedEntries(rec.FutureTasks),
		Incomplete: sortedEntries(rec.IncompleteTasks),
	}, nil
}

func sortedEntries(m map[string]storage.Date) []DueTask {
	out := make([]DueTask, 0, len(m))
	for name, due := range m {
		out = append(out, DueTask{Name: name, Due: due})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Due.Equal(out[j].Due) {
			return out[i].Due.Before(out[j].Due)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
