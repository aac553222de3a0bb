// Package session persists the client-side login state: the bearer token,
// the cached user and the active-farm selection. It is the only mutable
// state the client keeps between runs; everything else lives in the backend.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"dairydesk/internal/api"
)

// Snapshot is the persisted session state. It is always written as a whole
// so a reader never observes a token without its user.
type Snapshot struct {
	Token      string    `json:"token"`
	User       *api.User `json:"user,omitempty"`
	ActiveFarm *api.Farm `json:"activeFarm,omitempty"`
}

// Store reads and writes the session snapshot file. Safe for use from the
// UI goroutine and background fetches.
type Store struct {
	mu   sync.RWMutex
	path string
	snap Snapshot
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dairydesk", "session.json"), nil
}

// Open loads the store at path, starting empty if no file exists yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, &s.snap); err != nil {
		// A corrupt session file means logging in again, not a crash.
		s.snap = Snapshot{}
	}
	return s, nil
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Token
}

// User returns the cached user, or nil when unauthenticated.
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.User
}

// ActiveFarm returns the cached farm selection, or nil.
func (s *Store) ActiveFarm() *api.Farm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.ActiveFarm
}

// Authenticated reports whether a complete session is cached.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Token != "" && s.snap.User != nil
}

// SaveLogin stores a fresh token and user together, replacing any previous
// session. The active farm is reset; it belongs to the previous identity.
func (s *Store) SaveLogin(token string, user api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{Token: token, User: &user}
	return s.flushLocked()
}

// SetActiveFarm updates the farm selection for farm-scoped views.
func (s *Store) SetActiveFarm(farm *api.Farm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ActiveFarm = farm
	return s.flushLocked()
}

// Clear wipes the session on logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// flushLocked writes the snapshot atomically: temp file then rename, so a
// crash mid-write never leaves a half-updated session on disk.
func (s *Store) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
