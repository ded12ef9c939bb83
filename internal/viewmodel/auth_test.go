package viewmodel

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
	"github.com/filmoteca/filmoteca-cli/internal/service"
)

func newTestAuthService(gateway ports.AuthGateway, sessions ports.SessionStore) *service.AuthService {
	return service.NewAuthService(service.AuthServiceOptions{
		Gateway:  gateway,
		Sessions: sessions,
	})
}

func TestLogin_BlankCredentialsNeverReachNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	vm := NewLogin(newTestAuthService(gateway, sessions))
	vm.Identifier = "ana@example.com"
	vm.Password = "   "

	route, err := vm.Submit(context.Background())

	var vErr *apperror.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, service.RouteAuth, route)
	assert.Equal(t, msgCredentialsRequired, vm.Message())
}

func TestLogin_AdminLandsOnAdminRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	gateway.EXPECT().Login(gomock.Any(), "admin@example.com", "secret").
		Return(ports.LoginResult{Token: "tok-1", Role: auth.RoleAdmin}, nil)
	sessions.EXPECT().Save(gomock.Any(), auth.Session{Token: "tok-1", Role: auth.RoleAdmin}).Return(nil)

	vm := NewLogin(newTestAuthService(gateway, sessions))
	vm.Identifier = "admin@example.com"
	vm.Password = "secret"

	route, err := vm.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.RouteAdmin, route)
	assert.Equal(t, PhaseReady, vm.Phase())
}

func TestLogin_RejectionShowsBackendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	gateway.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.LoginResult{}, &apperror.AuthError{Message: "Credenciales inválidas"})
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	vm := NewLogin(newTestAuthService(gateway, sessions))
	vm.Identifier = "ana@example.com"
	vm.Password = "wrong"

	route, err := vm.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, service.RouteAuth, route)
	assert.Equal(t, "Credenciales inválidas", vm.Message())
	assert.Equal(t, PhaseReady, vm.Phase())
}

func TestRegister_MissingFieldNeverReachesNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	gateway.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	vm := NewRegister(newTestAuthService(gateway, sessions))
	vm.Username = "ana"
	vm.Password = "secret"
	// Email left blank.

	err := vm.Submit(context.Background())
	var vErr *apperror.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, msgAllFieldsRequired, vm.Message())
}

func TestRegister_SuccessDoesNotEstablishSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	gateway.EXPECT().Register(gomock.Any(), "ana", "ana@example.com", "secret", "USER").Return(nil)
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	vm := NewRegister(newTestAuthService(gateway, sessions))
	vm.Username = "ana"
	vm.Email = "ana@example.com"
	vm.Password = "secret"

	require.NoError(t, vm.Submit(context.Background()))
	assert.Equal(t, PhaseReady, vm.Phase())
}

func TestRegister_UnknownRoleRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockAuthGateway(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	gateway.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	vm := NewRegister(newTestAuthService(gateway, sessions))
	vm.Username = "ana"
	vm.Email = "ana@example.com"
	vm.Password = "secret"
	vm.Role = "SUPERUSER"

	err := vm.Submit(context.Background())
	var vErr *apperror.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "role", vErr.Field)
}
