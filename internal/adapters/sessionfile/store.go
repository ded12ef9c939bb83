// Package sessionfile stores the session as a single JSON document on disk.
// Token and role are written in one rename, so a concurrent reader sees
// either the old pair or the new pair, never a mix.
package sessionfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

const sessionFileMode = 0o600

// Store is a file-backed session store.
type Store struct {
	path string
}

// NewStore creates a file session store at path. An empty path resolves to
// the default location under the user config dir.
func NewStore(path string) (*Store, error) {
	if path == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return &Store{path: path}, nil
}

// DefaultPath returns the default session file location,
// e.g. ~/.config/filmoteca/session.json on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "filmoteca", "session.json"), nil
}

// Path returns the resolved session file location.
func (s *Store) Path() string { return s.path }

func (s *Store) Save(_ context.Context, sess auth.Session) error {
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return fmt.Errorf("create session dir: %w", mkErr)
	}

	// Write to a temp file in the same directory and rename over the target
	// so the (token, role) pair updates in one step.
	tmp, err := os.CreateTemp(dir, "session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write session: %w", writeErr)
	}
	if chErr := tmp.Chmod(sessionFileMode); chErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod session file: %w", chErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", closeErr)
	}

	if renameErr := os.Rename(tmpName, s.path); renameErr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store session: %w", renameErr)
	}
	return nil
}

func (s *Store) Get(_ context.Context) (auth.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return auth.Session{}, ports.ErrNoSession
		}
		return auth.Session{}, fmt.Errorf("read session: %w", err)
	}

	var sess auth.Session
	if unmarshalErr := json.Unmarshal(data, &sess); unmarshalErr != nil {
		return auth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}
	if sess.Token == "" {
		return auth.Session{}, ports.ErrNoSession
	}
	return sess, nil
}

func (s *Store) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
