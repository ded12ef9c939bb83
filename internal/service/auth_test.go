package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/mocks"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

func TestAuthService_Login_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)

	gateway.EXPECT().Login(gomock.Any(), "a@b.com", "x").
		Return(ports.LoginResult{Token: "tok-1", Role: auth.RoleAdmin}, nil)
	sessions.EXPECT().Save(gomock.Any(), auth.Session{Token: "tok-1", Role: auth.RoleAdmin}).
		Return(nil)

	svc := NewAuthService(AuthServiceOptions{Gateway: gateway, Sessions: sessions})

	sess, err := svc.Login(ctx, "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, auth.RoleAdmin, sess.Role)
}

func TestAuthService_Login_RejectionDoesNotTouchStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)

	authErr := apperror.NewAuthError("Credenciales inválidas", apperror.LoginFallbackMessage, nil)
	gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.LoginResult{}, authErr)
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := NewAuthService(AuthServiceOptions{Gateway: gateway, Sessions: sessions})

	_, err := svc.Login(context.Background(), "a@b.com", "bad")
	assert.ErrorIs(t, err, authErr)
}

func TestAuthService_Login_SaveFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)

	gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.LoginResult{Token: "tok", Role: auth.RoleUser}, nil)
	saveErr := errors.New("disk full")
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)

	svc := NewAuthService(AuthServiceOptions{Gateway: gateway, Sessions: sessions})

	_, err := svc.Login(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, saveErr)
}

func TestAuthService_Logout_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	sessions.EXPECT().Delete(gomock.Any()).Return(nil)

	svc := NewAuthService(AuthServiceOptions{Gateway: gateway, Sessions: sessions})
	assert.NoError(t, svc.Logout(context.Background()))
}

func TestAuthService_Register_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	gateway.EXPECT().Register(gomock.Any(), "ana", "ana@b.com", "pw", "admin").Return(nil)

	svc := NewAuthService(AuthServiceOptions{Gateway: gateway, Sessions: sessions})
	assert.NoError(t, svc.Register(context.Background(), "ana", "ana@b.com", "pw", "admin"))
}

func TestAuthService_ActiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	sessions.EXPECT().Get(gomock.Any()).Return(auth.Session{}, ports.ErrNoSession)

	svc := NewAuthService(AuthServiceOptions{Gateway: gateway, Sessions: sessions})
	_, err := svc.ActiveSession(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoSession)
}
