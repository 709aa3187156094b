package storage

import "encoding/json"

// TaskAggregate is the per-task rollup kept under a difficulty bucket. It is
// created on the first log of a (difficulty, task) pair and only ever grows.
type TaskAggregate struct {
	Count         int  `json:"count"`
	TotalTime     int  `json:"total_time"`
	LastCompleted Date `json:"last_completed"`
}

// PlayerRecord is the full persisted state for one player, one JSON document
// per username. Field names match the on-disk layout.
type PlayerRecord struct {
	PlayerName string `json:"player_name"`
	Level      int    `json:"level"`
	LastLogin  *Date  `json:"last_login"`
	Streak     int    `json:"streak"`
	TotalExp   int    `json:"total_exp"`

	// completed_tasks: difficulty -> normalized task name -> aggregate.
	CompletedTasks map[string]map[string]TaskAggregate `json:"completed_tasks"`

	// Pending future tasks and the ones that passed their due date unresolved.
	FutureTasks     map[string]Date `json:"future_tasks,omitempty"`
	IncompleteTasks map[string]Date `json:"incomplete_tasks,omitempty"`

	// Opaque credential blob for the calendar integration. Preserved as-is
	// across load/save; nothing in the core reads it.
	GoogleToken json.RawMessage `json:"google_token,omitempty"`
}

// NewPlayerRecord returns the default record for a player that has never
// logged in: level 0, streak 0, no last_login.
func NewPlayerRecord(username string) *PlayerRecord {
	return &PlayerRecord{
		PlayerName:     username,
		CompletedTasks: map[string]map[string]TaskAggregate{},
	}
}

// Clone deep-copies the record so callers can hand out display snapshots
// without exposing the owned maps.
func (r *PlayerRecord) Clone() *PlayerRecord {
	out := *r
	out.CompletedTasks = make(map[string]map[string]TaskAggregate, len(r.CompletedTasks))
	for diff, tasks := range r.CompletedTasks {
		m := make(map[string]TaskAggregate, len(tasks))
		for name, agg := range tasks {
			m[name] = agg
		}
		out.CompletedTasks[diff] = m
	}
	out.FutureTasks = cloneDates(r.FutureTasks)
	out.IncompleteTasks = cloneDates(r.IncompleteTasks)
	if r.LastLogin != nil {
		d := *r.LastLogin
		out.LastLogin = &d
	}
	if r.GoogleToken != nil {
		out.GoogleToken = append(json.RawMessage(nil), r.GoogleToken...)
	}
	return &out
}

func cloneDates(in map[string]Date) map[string]Date {
	if in == nil {
		return nil
	}
	out := make(map[string]Date, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
