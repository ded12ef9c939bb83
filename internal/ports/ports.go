// Package ports defines interfaces (hexagonal ports) for the client's
// collaborators. Implementations live in internal/adapters; orchestration in
// internal/service and internal/viewmodel.
package ports

import (
	"context"

	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
)

// SessionStore persists the single local session durably. Save overwrites any
// prior session; token and role are written together as one document, so a
// reader never observes one updated without the other. Get returns
// ErrNoSession after Delete or when nothing was ever saved.
type SessionStore interface {
	Save(ctx context.Context, sess auth.Session) error
	Get(ctx context.Context) (auth.Session, error)
	Delete(ctx context.Context) error
}

// ErrNoSession is returned by SessionStore.Get when no session is persisted.
type noSessionError struct{}

func (noSessionError) Error() string { return "no session" }

var ErrNoSession error = noSessionError{}

// LoginResult is what a successful login yields: the bearer token and the
// role the backend returned alongside it.
type LoginResult struct {
	Token string
	Role  auth.Role
}

// AuthGateway performs credential operations against the backend.
type AuthGateway interface {
	// Login exchanges an identifier (email or username) and password for a
	// token and role. Rejection or an unreachable backend surfaces as an
	// *apperror.AuthError.
	Login(ctx context.Context, identifier, password string) (LoginResult, error)

	// Register creates an account. The role travels as a single-element list
	// of its upper-cased form.
	Register(ctx context.Context, username, email, password, role string) error
}

// MovieGateway is the stateless operation set over movies. Read operations
// return records already adapted to the front-end shape; write operations
// accept draft data and adapt it back to the backend shape.
type MovieGateway interface {
	List(ctx context.Context) ([]catalog.Movie, error)
	GetByID(ctx context.Context, id int) (catalog.Movie, error)
	Create(ctx context.Context, data catalog.MovieFormData) (catalog.Movie, error)
	Update(ctx context.Context, id int, data catalog.MovieFormData) (catalog.Movie, error)
	Delete(ctx context.Context, id int) error
}

// GenreGateway is the stateless operation set over genres; records pass
// through unrenamed.
type GenreGateway interface {
	List(ctx context.Context) ([]catalog.Genre, error)
	GetByID(ctx context.Context, id int) (catalog.Genre, error)
	Create(ctx context.Context, data catalog.GenreFormData) (catalog.Genre, error)
	Update(ctx context.Context, id int, data catalog.GenreFormData) (catalog.Genre, error)
	Delete(ctx context.Context, id int) error
}
