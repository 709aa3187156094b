package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// RecordStore is the persistence boundary for player records. Implementations
// must substitute a fresh default record when nothing usable exists on disk.
type RecordStore interface {
	Load(username string) (*PlayerRecord, error)
	Save(rec *PlayerRecord) error
}

// FileStore keeps one JSON document per username under a data directory.
// There is no locking: a second process writing the same record wins last,
// which is acceptable for this single-user design.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(username string) string {
	return filepath.Join(s.dir, username+"_data.json")
}

// Load reads the record for username. A missing or corrupt file yields a
// fresh default record (persisted immediately) rather than an error.
func (s *FileStore) Load(username string) (*PlayerRecord, error) {
	data, err := os.ReadFile(s.path(username))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read player record: %w", err)
		}
		return s.freshRecord(username)
	}

	rec := NewPlayerRecord(username)
	if err := json.Unmarshal(data, rec); err != nil {
		// Corrupt file: start over with defaults per the recovery policy.
		return s.freshRecord(username)
	}
	if rec.CompletedTasks == nil {
		rec.CompletedTasks = map[string]map[string]TaskAggregate{}
	}
	return rec, nil
}

func (s *FileStore) freshRecord(username string) (*PlayerRecord, error) {
	rec := NewPlayerRecord(username)
	if err := s.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save writes the full record. Write-through, no batching; a crash mid-write
// may corrupt the file, in which case Load falls back to defaults.
func (s *FileStore) Save(rec *PlayerRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal player record: %w", err)
	}
	if err := os.WriteFile(s.path(rec.PlayerName), data, 0o644); err != nil {
		return fmt.Errorf("write player record: %w", err)
	}
	return nil
}
