package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Gateway  ports.AuthGateway
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// AuthService orchestrates credential flows: it is the only component that
// mutates the session store, and it does so exactly at login and logout.
type AuthService struct {
	gateway  ports.AuthGateway
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Gateway == nil {
		panic("auth gateway is required")
	}
	if opts.Sessions == nil {
		panic("session store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		gateway:  opts.Gateway,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

// Login exchanges credentials for a session and persists it. The stored role
// is exactly the one the login response carried; the token's embedded claims
// are never decoded, so the role cannot drift from what the server issued at
// login time.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (auth.Session, error) {
	result, err := s.gateway.Login(ctx, identifier, password)
	if err != nil {
		return auth.Session{}, err
	}

	sess := auth.Session{Token: result.Token, Role: result.Role}
	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return auth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}

	s.logger.InfoContext(ctx, "session established", "role", sess.Role)
	return sess, nil
}

// Register creates an account. It does not log the new user in.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) error {
	return s.gateway.Register(ctx, username, email, password, role)
}

// Logout removes the persisted session. Logging out when no session exists
// is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.InfoContext(ctx, "session cleared")
	return nil
}

// ActiveSession returns the persisted session, or ports.ErrNoSession.
func (s *AuthService) ActiveSession(ctx context.Context) (auth.Session, error) {
	return s.sessions.Get(ctx)
}
