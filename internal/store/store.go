package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/user"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// Store owns the snapshot behind a single lock. Every successful mutation
// rebuilds the login index and rewrites the whole backing file; a failed
// write is logged and the store keeps serving the in-memory state.
type Store struct {
	mu         sync.RWMutex
	path       string
	logger     Logger
	snap       Snapshot
	loginIndex map[string]string
}

func Open(path string, logger Logger) *Store {
	return &Store{
		path:       path,
		logger:     logger,
		loginIndex: make(map[string]string),
	}
}

// Load reads the backing file into memory. A missing or corrupt file leaves
// an empty store; neither is fatal. Indexes are rebuilt in both cases.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = Snapshot{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error(fmt.Sprintf("store: cannot read %s, starting empty: %v", s.path, err))
		}
		s.rebuildLocked()
		return nil
	}
	if err := json.Unmarshal(data, &s.snap); err != nil {
		s.logger.Error(fmt.Sprintf("store: corrupt snapshot %s, starting empty: %v", s.path, err))
		s.snap = Snapshot{}
	}
	s.rebuildLocked()
	return nil
}

// View runs fn under the read lock. fn must not retain pointers into the
// snapshot past its return.
func (s *Store) View(fn func(*Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.snap)
}

// Mutate applies fn under the write lock. When fn succeeds the login index is
// rebuilt and the snapshot saved; a save failure degrades to in-memory only.
func (s *Store) Mutate(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.snap); err != nil {
		return err
	}
	s.rebuildLocked()
	if err := s.saveLocked(); err != nil {
		s.logger.Error(fmt.Sprintf("store: save failed, continuing in memory: %v", err))
	}
	return nil
}

// RebuildIndexes repopulates the login index from the four role collections.
// Load and Mutate already do this; it exists for callers that need to force a
// rebuild after touching the snapshot out of band.
func (s *Store) RebuildIndexes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuildLocked()
}

// FindLogin resolves a login to the owning account's tax id.
func (s *Store) FindLogin(login string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	taxID, ok := s.loginIndex[strings.ToLower(strings.TrimSpace(login))]
	return taxID, ok
}

// Save rewrites the backing file from the current snapshot.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked()
}

func (s *Store) rebuildLocked() {
	index := make(map[string]string)
	s.snap.Users(func(u *user.User) bool {
		if u.Login != "" {
			index[strings.ToLower(u.Login)] = u.TaxID
		}
		return true
	})
	s.loginIndex = index
}

// saveLocked writes to a temp file and renames it over the target so a crash
// mid-write never leaves a half-written snapshot behind.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(&s.snap, "", "  ")
	if err != nil {
		return common.NewError(common.CodePersistence, "failed to encode snapshot", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return common.NewError(common.CodePersistence, "failed to create temp snapshot", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return common.NewError(common.CodePersistence, "failed to write snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return common.NewError(common.CodePersistence, "failed to close snapshot", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return common.NewError(common.CodePersistence, "failed to replace snapshot", err)
	}
	return nil
}
