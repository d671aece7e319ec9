// Package session is the single writer of the persisted login state. Every
// reader (header, route gating, the API client's token source) goes through
// this one interface.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	University string `json:"university,omitempty"`
	Role       string `json:"role"`
}

type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Store struct {
	path string

	mu      sync.Mutex
	current *Session
}

// NewStore opens the session store under the user config directory.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(dir, "dormigo", "session.json")), nil
}

// NewStoreAt opens a store backed by an explicit path.
func NewStoreAt(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

// load reads the persisted session. A missing or corrupted file simply
// leaves the store logged out.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		os.Remove(s.path)
		return
	}
	s.current = &sess
}

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(s.current)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Current returns the logged-in session, or nil.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Token returns the bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) Login(user User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &Session{User: user, Token: token}
	return s.persist()
}

func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Update mutates the stored user in place and persists the result. A no-op
// when logged out.
func (s *Store) Update(mutate func(*User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	mutate(&s.current.User)
	return s.persist()
}
