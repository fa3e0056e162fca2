package authstate

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/dmitrijs2005/admingate/internal/filex"
)

// Store loads and saves the persisted authentication record.
type Store interface {
	Load() Record
	Save(r Record) error
	Clear() error
}

// FileStore keeps the record in a single JSON file on the local filesystem.
// Writes go through an atomic rename so that a crash mid-save never leaves a
// truncated file behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore persisting to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the record from disk. A missing file, unreadable contents,
// malformed JSON, or an unexpected envelope version all yield the empty
// record: persistence failures must never block the client from starting.
func (s *FileStore) Load() Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Record{}
	}
	if env.Version != Version {
		return Record{}
	}

	return env.State.normalize()
}

// Save writes the record to disk atomically, normalizing it first so a
// half-populated record is never persisted.
func (s *FileStore) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	env := envelope{State: r.normalize(), Version: Version}
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return filex.WriteFileAtomic(s.path, data, 0o600)
}

// Clear replaces the persisted record with the empty one. The file is kept
// (with empty state) rather than removed, so a subsequent Load does not need
// to distinguish the two cases.
func (s *FileStore) Clear() error {
	return s.Save(Record{})
}
