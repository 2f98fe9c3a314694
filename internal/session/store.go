// Package session keeps the bearer token and last-known user record for the
// storefront, persisted as JSON under a state directory.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrUnauthenticated signals that no session exists. Callers abort the
// current operation and the adapter sends the user to sign-in.
var ErrUnauthenticated = errors.New("not signed in")

// User is the last-known user record returned at login. The token claims
// carry the same fields.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address,omitempty"`
}

const sessionFile = "session.json"

type state struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Store reads and writes the persisted session. A missing or unreadable
// state file degrades to "no session".
type Store struct {
	dir string
	log *zap.Logger
}

func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

// Token returns the current bearer token, if any.
func (s *Store) Token() (string, bool) {
	st, ok := s.load()
	if !ok || st.Token == "" {
		return "", false
	}
	return st.Token, true
}

// User returns the stored user record, if a session exists.
func (s *Store) User() (User, bool) {
	st, ok := s.load()
	if !ok || st.Token == "" {
		return User{}, false
	}
	return st.User, true
}

// RequireToken returns the token or ErrUnauthenticated when absent.
func (s *Store) RequireToken() (string, error) {
	token, ok := s.Token()
	if !ok {
		return "", ErrUnauthenticated
	}
	return token, nil
}

// Save persists the token and user record, creating the state dir if needed.
func (s *Store) Save(token string, user User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	buf, err := json.Marshal(state{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path(), buf, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, sessionFile)
}

func (s *Store) load() (state, bool) {
	buf, err := os.ReadFile(s.path())
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("session state unreadable", zap.Error(err))
		}
		return state{}, false
	}
	var st state
	if err := json.Unmarshal(buf, &st); err != nil {
		s.log.Warn("session state corrupt", zap.Error(err))
		return state{}, false
	}
	return st, true
}
