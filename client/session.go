package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenFileName is the fixed key the bearer credential is stored under.
const tokenFileName = "token"

// Session holds the bearer credential for the signed-in user and persists
// it on disk so a restart keeps the session alive. There is no refresh
// flow; an expired token simply makes requests fail with 401.
type Session struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewSession opens the session store rooted at dir. An empty dir falls
// back to ~/.clearview. Any previously saved token is loaded.
func NewSession(dir string) (*Session, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".clearview")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	s := &Session{path: filepath.Join(dir, tokenFileName)}
	if data, err := os.ReadFile(s.path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s, nil
}

// Token returns the stored credential, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Save stores the credential at sign-in.
func (s *Session) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear tears the session down at sign-out.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
