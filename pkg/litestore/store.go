// Package litestore is the file-backed fallback store. It keeps the whole
// coordination state in one JSON document guarded by a process lock file,
// and holds the same semantics as the durable backend: the task state
// machine, leases, file reservations, liveness, the journal, and the
// escalation channels. With an empty directory it runs purely in memory,
// which is what tests use.
package litestore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/openmaf/maf/pkg/config"
	"github.com/openmaf/maf/pkg/masking"
	"github.com/openmaf/maf/pkg/models"
)

const (
	stateFileName = "maf-state.json"
	lockFileName  = "maf.lock"
)

// document is the single persisted state blob.
type document struct {
	Tasks        map[string]*models.Task      `json:"tasks"`
	Leases       map[string]*models.Lease     `json:"leases"` // keyed by task id
	Reservations []*models.Reservation        `json:"reservations"`
	Agents       map[string]*models.Agent     `json:"agents"`
	Events       []models.Event               `json:"events"`
	NextEventID  int64                        `json:"next_event_id"`
	Evidence     []models.Evidence            `json:"evidence"`
	Mail         []models.Envelope            `json:"mail"`
	NextMailID   int64                        `json:"next_mail_id"`
	Conflicts    []models.ReservationConflict `json:"conflicts"`
}

func newDocument() *document {
	return &document{
		Tasks:       map[string]*models.Task{},
		Leases:      map[string]*models.Lease{},
		Agents:      map[string]*models.Agent{},
		NextEventID: 1,
		NextMailID:  1,
	}
}

// Store is a single-process coordination store over one JSON document.
// Every operation takes the store mutex; mutations persist before they
// return, so a crash never loses an acknowledged write.
type Store struct {
	mu     sync.Mutex
	dir    string // empty means memory-only
	cfg    *config.Config
	doc    *document
	masker *masking.Masker

	chanMu   sync.RWMutex
	channels map[string]bool
}

// Open opens (or creates) the store under dir. The directory is claimed
// with an exclusive lock file; a second runtime opening the same directory
// fails fast instead of corrupting the document. An empty dir yields a
// memory-only store.
func Open(cfg *config.Config, dir string) (*Store, error) {
	s := &Store{
		dir:      dir,
		cfg:      cfg,
		doc:      newDocument(),
		masker:   masking.New(),
		channels: map[string]bool{models.DefaultChannel: true},
	}
	for _, ch := range cfg.Channels.All() {
		s.channels[ch] = true
	}
	if dir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := s.acquireLock(); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		s.releaseLock()
		return nil, err
	}

	slog.Info("File store opened", "dir", dir, "tasks", len(s.doc.Tasks))
	return s, nil
}

// Name identifies the backend in status output and fallback events.
func (s *Store) Name() string {
	if s.dir == "" {
		return "memory"
	}
	return "file"
}

// Close releases the directory lock. The document is already durable;
// every mutation persisted before returning.
func (s *Store) Close() error {
	if s.dir != "" {
		s.releaseLock()
	}
	return nil
}

// acquireLock claims the data directory. O_EXCL makes creation the test:
// whoever creates the lock file owns the directory.
func (s *Store) acquireLock() error {
	path := filepath.Join(s.dir, lockFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &models.FatalError{Err: fmt.Errorf("data dir %s is locked by another runtime (remove %s if stale)", s.dir, path)}
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	return f.Close()
}

func (s *Store) releaseLock() {
	if err := os.Remove(filepath.Join(s.dir, lockFileName)); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove lock file", "dir", s.dir, "error", err)
	}
}

// load reads the persisted document, if any.
func (s *Store) load() error {
	path := filepath.Join(s.dir, stateFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &models.FatalError{Err: fmt.Errorf("failed to read state file: %w", err)}
	}

	doc := newDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return &models.FatalError{Err: fmt.Errorf("state file %s is corrupt: %w", path, err)}
	}
	if doc.NextEventID == 0 {
		doc.NextEventID = 1
	}
	if doc.NextMailID == 0 {
		doc.NextMailID = 1
	}
	s.doc = doc
	return nil
}

// persist writes the document atomically: temp file in the same directory,
// then rename over the old state. Callers hold s.mu.
func (s *Store) persist() error {
	if s.dir == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	path := filepath.Join(s.dir, stateFileName)
	tmp, err := os.CreateTemp(s.dir, stateFileName+".tmp-*")
	if err != nil {
		return &models.FatalError{Err: fmt.Errorf("failed to create temp state file: %w", err)}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &models.FatalError{Err: fmt.Errorf("failed to write state: %w", err)}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &models.FatalError{Err: fmt.Errorf("failed to sync state: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		return &models.FatalError{Err: fmt.Errorf("failed to close state file: %w", err)}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &models.FatalError{Err: fmt.Errorf("failed to replace state file: %w", err)}
	}
	return nil
}

// mutate runs fn under the store lock and persists on success.
func (s *Store) mutate(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.persist()
}

// view runs fn read-only under the store lock.
func (s *Store) view(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.doc)
}
