package viewmodel

import (
	"context"
	"strings"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/service"
	"github.com/filmoteca/filmoteca-cli/internal/validation"
)

const msgAllFieldsRequired = "Completa todos los campos"

// registerRoles are the roles the register screen offers.
var registerRoles = []string{"USER", "ADMIN"}

// Register owns the registration screen. A successful submit does not log
// the user in; the screen returns to login.
type Register struct {
	auth *service.AuthService

	Username string
	Email    string
	Password string
	Role     string // defaults to USER

	phase   Phase
	message string
}

// NewRegister builds the register view model with the default role.
func NewRegister(auth *service.AuthService) *Register {
	if auth == nil {
		panic("auth service is required")
	}
	return &Register{auth: auth, Role: "USER", phase: PhaseReady}
}

// Validate checks that every field is filled and the role is a known choice.
func (vm *Register) Validate() *apperror.ValidationError {
	if strings.TrimSpace(vm.Username) == "" ||
		strings.TrimSpace(vm.Email) == "" ||
		strings.TrimSpace(vm.Password) == "" ||
		strings.TrimSpace(vm.Role) == "" {
		return &apperror.ValidationError{Field: "all", Message: msgAllFieldsRequired}
	}
	if msg := validation.OneOf("El rol", registerRoles)(vm.Role); msg != "" {
		return &apperror.ValidationError{Field: "role", Message: msg}
	}
	return nil
}

// Submit validates and registers; a validation failure never reaches the
// network.
func (vm *Register) Submit(ctx context.Context) error {
	if vErr := vm.Validate(); vErr != nil {
		vm.message = vErr.Message
		return vErr
	}

	vm.phase = PhaseSubmitting
	vm.message = ""

	if err := vm.auth.Register(ctx, vm.Username, vm.Email, vm.Password, vm.Role); err != nil {
		vm.phase = PhaseReady
		vm.message = err.Error()
		return err
	}

	vm.phase = PhaseReady
	return nil
}

// Phase returns the current lifecycle state.
func (vm *Register) Phase() Phase { return vm.phase }

// Message returns the pending user-facing message, if any.
func (vm *Register) Message() string { return vm.message }
