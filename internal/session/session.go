// Package session holds the client-side login state: an opaque bearer
// token and a role, persisted between runs. The gate only controls what
// the front end offers to show; the backend re-verifies the token on
// every admin request.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RoleAdmin is the only role that unlocks admin actions in the UI
const RoleAdmin = "admin"

// Store persists the token and role fields. Implementations must treat
// an absent session as empty values, not an error.
type Store interface {
	Get() (token, role string, err error)
	Set(token, role string) error
	Clear() error
}

// Gate derives authorization state from an injected Store. It never
// talks to the network and performs no local expiry check; an expired
// token is only discovered when the backend rejects it.
type Gate struct {
	store Store
}

// NewGate creates a gate over the given store
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// IsAdmin reports whether a token is stored and the role is admin
func (g *Gate) IsAdmin() bool {
	token, role, err := g.store.Get()
	if err != nil {
		return false
	}
	return token != "" && role == RoleAdmin
}

// Login persists the token and role
func (g *Gate) Login(token, role string) error {
	return g.store.Set(token, role)
}

// Logout clears both fields unconditionally
func (g *Gate) Logout() error {
	return g.store.Clear()
}

// Token returns the stored token, or empty when logged out
func (g *Gate) Token() string {
	token, _, err := g.store.Get()
	if err != nil {
		return ""
	}
	return token
}

// fileSession is the on-disk shape of a stored session
type fileSession struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// FileStore persists the session as a small JSON file, the terminal
// equivalent of browser local storage.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the session file location under the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "ratemyclass", "session.json"), nil
}

// Get reads the stored session; a missing file is an empty session
func (s *FileStore) Get() (string, string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("failed to read session file: %w", err)
	}

	var sess fileSession
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt session file behaves like being logged out
		return "", "", nil
	}
	return sess.Token, sess.Role, nil
}

// Set writes the session file, creating parent directories as needed
func (s *FileStore) Set(token, role string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.Marshal(fileSession{Token: token, Role: role})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the session file; already absent is fine
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests
type MemStore struct {
	token string
	role  string
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Get returns the held values
func (s *MemStore) Get() (string, string, error) {
	return s.token, s.role, nil
}

// Set stores both values
func (s *MemStore) Set(token, role string) error {
	s.token = token
	s.role = role
	return nil
}

// Clear wipes both values
func (s *MemStore) Clear() error {
	s.token = ""
	s.role = ""
	return nil
}
