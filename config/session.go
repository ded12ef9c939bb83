package config

import (
	"fmt"
	"strings"
)

// SessionBackend selects where the persisted session lives.
type SessionBackend string

const (
	// SessionBackendFile stores the session as a JSON file on disk (default).
	SessionBackendFile SessionBackend = "file"
	// SessionBackendRedis stores the session in Redis, for shared dev rigs
	// where several machines drive the same test account.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: file, redis)", v)
	}
}

// SessionConfig contains session storage configuration.
type SessionConfig struct {
	// Backend determines which session store adapter to use.
	Backend SessionBackend `env:"BACKEND" envDefault:"file"`

	// FilePath overrides the session file location. Empty means
	// $XDG_CONFIG_HOME/filmoteca/session.json (or the OS equivalent).
	FilePath string `env:"FILE_PATH" envDefault:""`

	// Redis connection settings (used when Backend=redis).
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	// RedisKey is the key the session document is stored under.
	RedisKey string `env:"REDIS_KEY" envDefault:"filmoteca:session"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendFile
	}
	if strings.TrimSpace(s.RedisKey) == "" {
		s.RedisKey = "filmoteca:session"
	}
}
