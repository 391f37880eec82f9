// Package history records pip install runs for later inspection.
//
// Every install, add, or upgrade pipkit performs appends one [Record] to a
// JSON-lines file under the application cache directory. Records are purely
// informational; nothing in the install path reads them back.
package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record describes one pip invocation made on the user's behalf.
type Record struct {
	ID         string    `json:"id"`         // unique run identifier
	Time       time.Time `json:"time"`       // when the run started (UTC)
	Command    string    `json:"command"`    // CLI operation, e.g. "install", "add"
	Specifiers []string  `json:"specifiers"` // what was handed to pip
	OK         bool      `json:"ok"`         // whether pip exited zero
}

// New creates a record stamped with the current time and a fresh run ID.
func New(command string, specifiers []string, ok bool) Record {
	return Record{
		ID:         uuid.NewString(),
		Time:       time.Now().UTC(),
		Command:    command,
		Specifiers: specifiers,
		OK:         ok,
	}
}

// Store appends and lists install records in a JSON-lines file.
// It is safe for concurrent use within one process; separate processes rely
// on O_APPEND for whole-line atomicity.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store under dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "history.jsonl")}, nil
}

// Append writes one record to the end of the history file.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// List returns the most recent records, newest first. A non-positive n
// returns everything. Corrupt lines are skipped.
func (s *Store) List(n int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if n > 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}
