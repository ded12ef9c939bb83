package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/mocks"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

func TestRouteFor(t *testing.T) {
	tests := []struct {
		name string
		sess auth.Session
		want Route
	}{
		{"no session", auth.Session{}, RouteAuth},
		{"admin", auth.Session{Token: "t", Role: auth.RoleAdmin}, RouteAdmin},
		{"user", auth.Session{Token: "t", Role: auth.RoleUser}, RouteUser},
		{"unknown role with token", auth.Session{Token: "t", Role: "ROLE_EDITOR"}, RouteUser},
		{"role but no token", auth.Session{Role: auth.RoleAdmin}, RouteAuth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteFor(tt.sess))
		})
	}
}

func TestResolve_AbsentSessionRoutesToAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionStore(ctrl)
	sessions.EXPECT().Get(gomock.Any()).Return(auth.Session{}, ports.ErrNoSession)

	route, sess, err := Resolve(context.Background(), sessions)
	require.NoError(t, err)
	assert.Equal(t, RouteAuth, route)
	assert.Empty(t, sess.Token)
}

func TestResolve_PersistedAdminRoutesToAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mocks.NewMockSessionStore(ctrl)
	sessions.EXPECT().Get(gomock.Any()).
		Return(auth.Session{Token: "t", Role: auth.RoleAdmin}, nil)

	route, sess, err := Resolve(context.Background(), sessions)
	require.NoError(t, err)
	assert.Equal(t, RouteAdmin, route)
	assert.Equal(t, auth.RoleAdmin, sess.Role)
}

func TestResolve_StoreFailureDegradesToAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("corrupt session file")
	sessions := mocks.NewMockSessionStore(ctrl)
	sessions.EXPECT().Get(gomock.Any()).Return(auth.Session{}, storeErr)

	route, _, err := Resolve(context.Background(), sessions)
	assert.Equal(t, RouteAuth, route)
	assert.ErrorIs(t, err, storeErr)
}
