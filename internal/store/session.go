// Package store holds the client-side application state: session,
// predict/generate content, bookmarks, and transient UI state. Stores
// mutate synchronously; all network work lives in the app orchestrator.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"veritas/internal/api"

	"go.uber.org/zap"
)

const (
	tokenFileName = "token.json"
	tokenEnv      = "VERITAS_TOKEN"
)

// tokenFile is the on-disk shape of the persisted access token.
type tokenFile struct {
	AccessToken string    `json:"accessToken"`
	SavedAt     time.Time `json:"savedAt"`
}

// Session is the authentication slice. Invariant: Authenticated() is
// true exactly when a token is held. The profile arrives lazily after
// authentication and may be absent while authenticated.
type Session struct {
	mu      sync.Mutex
	dir     string
	token   string
	profile *api.Profile
	log     *zap.Logger
}

// NewSession creates the session store and restores a previously
// persisted token from dir, if any. dir == "" disables persistence.
// A VERITAS_TOKEN environment variable overrides the stored token for
// the lifetime of the process; it is never written to disk.
func NewSession(dir string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if tok := os.Getenv(tokenEnv); tok != "" {
		return &Session{token: tok, log: log}
	}
	s := &Session{dir: dir, log: log}
	s.restore()
	return s
}

func (s *Session) restore() {
	if s.dir == "" {
		return
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if err != nil {
		return
	}
	var tf tokenFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		s.log.Warn("discarding unreadable token file", zap.Error(err))
		return
	}
	s.token = tf.AccessToken
}

// Token returns the current access token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Profile returns the fetched profile, or nil if not yet loaded.
func (s *Session) Profile() *api.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetToken stores and persists the token from a successful login.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = nil
	if s.dir == "" {
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("cannot create config dir", zap.Error(err))
		return
	}
	raw, _ := json.Marshal(tokenFile{AccessToken: token, SavedAt: time.Now()})
	if err := os.WriteFile(filepath.Join(s.dir, tokenFileName), raw, 0o600); err != nil {
		s.log.Warn("cannot persist token", zap.Error(err))
	}
}

// SetProfile records the profile fetched for the current token.
func (s *Session) SetProfile(p api.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &p
}

// Clear drops the token and profile and removes the persisted token.
// Used by logout and by profile-fetch failure (token invalidation).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	if s.dir == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, tokenFileName)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("cannot remove persisted token", zap.Error(err))
	}
}
