// Package history keeps a JSON-lines log of evaluated expressions.
package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
)

// Entry is one evaluation. Result holds the formatted value; Err is set
// instead when the expression could not be built.
type Entry struct {
	ID     uuid.UUID `json:"id"`
	Time   time.Time `json:"time"`
	Mode   string    `json:"mode"`
	Input  string    `json:"input"`
	Prefix string    `json:"prefix"`
	Result string    `json:"result,omitempty"`
	Err    string    `json:"error,omitempty"`
}

type Store struct {
	mu   sync.Mutex
	fs   billy.Filesystem
	name string

	now func() time.Time
}

func NewStore(fs billy.Filesystem, name string) *Store {
	return &Store{fs: fs, name: name, now: time.Now}
}

// Open returns a store backed by the file at path on the local disk.
func Open(path string) *Store {
	return NewStore(osfs.New(filepath.Dir(path)), filepath.Base(path))
}

// Append writes e to the end of the log, assigning an ID and a timestamp
// when they are not set.
func (s *Store) Append(e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Time.IsZero() {
		e.Time = s.now().UTC()
	}

	blob, err := json.Marshal(e)
	if err != nil {
		return err
	}

	file, err := s.fs.OpenFile(s.name, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(append(blob, '\n'))
	if err != nil {
		return fmt.Errorf("an error occurred writing history entry: %w", err)
	}

	return nil
}

// List returns every entry in the order it was appended. A log that does not
// exist yet is empty.
func (s *Store) List() ([]*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := util.ReadFile(s.fs, s.name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; scanner.Scan(); line++ {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}

		e := &Entry{}
		if err := json.Unmarshal(scanner.Bytes(), e); err != nil {
			return nil, fmt.Errorf("malformed history entry at line %d: %w", line, err)
		}
		entries = append(entries, e)
	}

	return entries, scanner.Err()
}

// Tail returns at most the n most recent entries. n <= 0 returns all of them.
func (s *Store) Tail(n int) ([]*Entry, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}

	return entries, nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
