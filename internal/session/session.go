// Package session is the admin session gate: a credential token persisted
// under the user config dir. A non-empty stored token means admin affordances
// (modal, delete, create form) are mounted; logout clears the file.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"atelier-cli/internal/config"
)

const fileName = "session.json"

// Session is the persisted login result.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// IsAuthenticated reports whether the session carries a usable token.
func (s *Session) IsAuthenticated() bool {
	return s != nil && strings.TrimSpace(s.Token) != ""
}

func path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the stored session. A missing file is the anonymous session
// (nil, nil), not an error.
func Load() (*Session, error) {
	p, err := path()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if !s.IsAuthenticated() {
		return nil, nil
	}
	return &s, nil
}

// Save persists the session. The file is user-only: it holds a bearer token.
func Save(s Session) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, raw, 0o600)
}

// Clear removes the stored session (logout). Clearing an absent session is a
// no-op.
func Clear() error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
