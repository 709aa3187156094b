package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileCreatesDefaults(t *testing.T) {
	store := NewFileStore(t.TempDir())

	rec, err := store.Load("ALICE")
	require.NoError(t, err)

	assert.Equal(t, "ALICE", rec.PlayerName)
	assert.Equal(t, 0, rec.Level)
	assert.Equal(t, 0, rec.Streak)
	assert.Equal(t, 0, rec.TotalExp)
	assert.Nil(t, rec.LastLogin)
	assert.NotNil(t, rec.CompletedTasks)

	// The default record is persisted right away.
	_, err = os.Stat(store.path("ALICE"))
	assert.NoError(t, err)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BOB_data.json"), []byte("{not json"), 0o644))

	rec, err := store.Load("BOB")
	require.NoError(t, err)
	assert.Equal(t, "BOB", rec.PlayerName)
	assert.Equal(t, 0, rec.TotalExp)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	last := NewDate(2025, time.March, 14)
	rec := &PlayerRecord{
		PlayerName: "CAROL",
		Level:      2,
		LastLogin:  &last,
		Streak:     5,
		TotalExp:   311,
		CompletedTasks: map[string]map[string]TaskAggregate{
			"Easy": {
				"Yoga": {Count: 3, TotalTime: 90, LastCompleted: last},
			},
			"Hard": {
				"Deep Work": {Count: 1, TotalTime: 120, LastCompleted: last.AddDays(-2)},
			},
		},
		FutureTasks:     map[string]Date{"Taxes": NewDate(2025, time.April, 15)},
		IncompleteTasks: map[string]Date{"Dentist": NewDate(2025, time.February, 1)},
		GoogleToken:     json.RawMessage(`{"token":"opaque"}`),
	}
	require.NoError(t, store.Save(rec))

	got, err := store.Load("CAROL")
	require.NoError(t, err)

	// The token blob survives re-indentation, so compare it as JSON and the
	// rest byte-for-byte.
	assert.JSONEq(t, string(rec.GoogleToken), string(got.GoogleToken))
	rec.GoogleToken, got.GoogleToken = nil, nil
	assert.Equal(t, rec, got)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.January, 2)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d))

	var absent *Date
	require.NoError(t, json.Unmarshal([]byte("null"), &absent))
	assert.Nil(t, absent)
}

func TestDateArithmetic(t *testing.T) {
	a := NewDate(2025, time.February, 28)
	b := a.AddDays(1)
	assert.Equal(t, "2025-03-01", b.String())
	assert.Equal(t, 1, b.DaysSince(a))
	assert.Equal(t, -1, a.DaysSince(b))
	assert.True(t, a.Before(b))
}

func TestCloneIsDeep(t *testing.T) {
	rec := NewPlayerRecord("DAN")
	rec.CompletedTasks["Easy"] = map[string]TaskAggregate{"Run": {Count: 1}}
	rec.FutureTasks = map[string]Date{"Pack": NewDate(2025, time.June, 1)}

	cp := rec.Clone()
	cp.CompletedTasks["Easy"]["Run"] = TaskAggregate{Count: 9}
	cp.FutureTasks["Pack"] = NewDate(2030, time.January, 1)

	assert.Equal(t, 1, rec.CompletedTasks["Easy"]["Run"].Count)
	assert.Equal(t, "2025-06-01", rec.FutureTasks["Pack"].String())
}
