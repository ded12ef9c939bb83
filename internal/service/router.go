package service

import (
	"context"
	"errors"

	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

// Route names one of the three disjoint screen trees. The tree is chosen
// from the persisted role at process start and re-chosen only after login or
// logout, never reactively mid-session.
type Route string

const (
	// RouteAdmin is the full management tree (movies and genres, all CRUD).
	RouteAdmin Route = "admin"
	// RouteUser is the read-oriented catalog tree.
	RouteUser Route = "user"
	// RouteAuth is the login/register tree shown without a session.
	RouteAuth Route = "auth"
)

// RouteFor maps a session to its screen tree. Unknown non-admin roles fall
// into the user tree: the backend vouched for the token, the client only
// gates the admin surface.
func RouteFor(sess auth.Session) Route {
	switch {
	case sess.Token == "":
		return RouteAuth
	case sess.IsAdmin():
		return RouteAdmin
	default:
		return RouteUser
	}
}

// Resolve reads the persisted session and decides the route. Store failures
// other than an absent session degrade to the auth tree rather than failing
// startup.
func Resolve(ctx context.Context, sessions ports.SessionStore) (Route, auth.Session, error) {
	sess, err := sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return RouteAuth, auth.Session{}, nil
		}
		return RouteAuth, auth.Session{}, err
	}
	return RouteFor(sess), sess, nil
}
