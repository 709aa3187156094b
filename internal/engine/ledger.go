package engine

import "github.com/abhi23s/productivity-tracker/internal/storage"

// applyTaskLog upserts the aggregate for (difficulty, name): first log
// creates it, later logs increment the count, add the minutes and re-stamp
// the completion date. Aggregates are never deleted. The caller validates
// difficulty and minutes and normalizes the name.
func applyTaskLog(rec *storage.PlayerRecord, d Difficulty, name string, timeSpentMinutes int, today storage.Date) storage.TaskAggregate {
	if rec.CompletedTasks == nil {
		rec.CompletedTasks = map[string]map[string]storage.TaskAggregate{}
	}
	byName := rec.CompletedTasks[string(d)]
	if byName == nil {
		byName = map[string]storage.TaskAggregate{}
		rec.CompletedTasks[string(d)] = byName
	}

	agg, ok := byName[name]
	if ok {
		agg.Count++
		agg.TotalTime += timeSpentMinutes
		agg.LastCompleted = today
	} else {
		agg = storage.TaskAggregate{Count: 1, TotalTime: timeSpentMinutes, LastCompleted: today}
	}
	byName[name] = agg
	return agg
}
