package engine

import (
	"fmt"
	"sort"

	"github.com/abhi23s/productivity-tracker/internal/storage"
)

// DueTask is a scheduled future task that has reached its due date.
type DueTask struct {
	Name string
	Due  storage.Date
}

// DueResolution is the user's verdict on a due task. When Completed, the
// difficulty and time spent are supplied at resolution time and the task is
// logged exactly like a direct task log.
type DueResolution struct {
	Completed  bool
	Difficulty Difficulty
	TimeSpent  int
}

// DueTaskResolver decides the outcome of one due task. It typically prompts
// the user and may block indefinitely.
type DueTaskResolver func(task DueTask) (DueResolution, error)

// DueOutcome records how one due task was settled.
type DueOutcome struct {
	Task      DueTask
	Completed bool
	Aggregate storage.TaskAggregate
	Progress  ProgressResult
}

// applySchedule records a pending future task. A duplicate name overwrites
// the prior due date.
func applySchedule(rec *storage.PlayerRecord, name string, due storage.Date) {
	if rec.FutureTasks == nil {
		rec.FutureTasks = map[string]storage.Date{}
	}
	rec.FutureTasks[name] = due
}

// dueTasks snapshots the future tasks due on or before today (due "today"
// counts as due), sorted by name so multiple simultaneously-due tasks are
// surfaced in a stable order.
func dueTasks(rec *storage.PlayerRecord, today storage.Date) []DueTask {
	var due []DueTask
	for name, date := range rec.FutureTasks {
		if !date.After(today) {
			due = append(due, DueTask{Name: name, Due: date})
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].Name < due[j].Name })
	return due
}

// resolveDueTasks partitions due tasks into completed and incomplete. Each
// due entry is visited exactly once per call; the set is snapshotted up
// front so nothing added mid-pass is revisited. Completions reuse the ledger
// and progression paths with the streak as it stands before the login's
// streak update, matching the login ordering.
func resolveDueTasks(rec *storage.PlayerRecord, today storage.Date, resolve DueTaskResolver) ([]DueOutcome, error) {
	due := dueTasks(rec, today)
	if len(due) == 0 || resolve == nil {
		return nil, nil
	}

	outcomes := make([]DueOutcome, 0, len(due))
	for _, task := range due {
		res, err := resolve(task)
		if err != nil {
			return nil, fmt.Errorf("resolve due task %q: %w", task.Name, err)
		}

		out := DueOutcome{Task: task, Completed: res.Completed}
		if res.Completed {
			if !res.Difficulty.IsValid() {
				return nil, InvalidDifficultyError{Input: string(res.Difficulty)}
			}
			if res.TimeSpent < 0 {
				return nil, InvalidTimeError{Minutes: res.TimeSpent}
			}
			out.Aggregate = applyTaskLog(rec, res.Difficulty, task.Name, res.TimeSpent, today)
			prog, err := applyCompletion(rec, res.Difficulty, res.TimeSpent)
			if err != nil {
				return nil, err
			}
			out.Progress = prog
		} else {
			if rec.IncompleteTasks == nil {
				rec.IncompleteTasks = map[string]storage.Date{}
			}
			rec.IncompleteTasks[task.Name] = task.Due
		}
		delete(rec.FutureTasks, task.Name)
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
