package viewmodel

import (
	"context"
	"strings"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/service"
)

const msgCredentialsRequired = "Por favor ingresa tu usuario/email y contraseña"

// Login owns the login screen: credential fields and the submit lifecycle.
// On success it reports the route the session now warrants, the only point
// besides startup and logout where the route is re-evaluated.
type Login struct {
	auth *service.AuthService

	Identifier string
	Password   string

	phase   Phase
	message string
}

// NewLogin builds the login view model.
func NewLogin(auth *service.AuthService) *Login {
	if auth == nil {
		panic("auth service is required")
	}
	return &Login{auth: auth, phase: PhaseReady}
}

// Submit validates the fields and runs the login flow. A validation failure
// never reaches the network. The returned route is meaningful only when err
// is nil.
func (vm *Login) Submit(ctx context.Context) (service.Route, error) {
	if strings.TrimSpace(vm.Identifier) == "" || strings.TrimSpace(vm.Password) == "" {
		vErr := &apperror.ValidationError{Field: "credentials", Message: msgCredentialsRequired}
		vm.message = vErr.Message
		return service.RouteAuth, vErr
	}

	vm.phase = PhaseSubmitting
	vm.message = ""

	sess, err := vm.auth.Login(ctx, vm.Identifier, vm.Password)
	if err != nil {
		vm.phase = PhaseReady
		vm.message = err.Error()
		return service.RouteAuth, err
	}

	vm.phase = PhaseReady
	return service.RouteFor(sess), nil
}

// Phase returns the current lifecycle state.
func (vm *Login) Phase() Phase { return vm.phase }

// Message returns the pending user-facing message, if any.
func (vm *Login) Message() string { return vm.message }
