package viewmodel

import (
	"context"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
	"github.com/filmoteca/filmoteca-cli/internal/validation"
)

const (
	msgGenreLoadFailed   = "No se pudo cargar el género."
	msgGenreCreateFailed = "No se pudo crear el género."
	msgGenreUpdateFailed = "No se pudo actualizar el género."
)

// GenreForm owns the create/edit genre form.
type GenreForm struct {
	genres ports.GenreGateway
	id     int // 0 means create

	// Data is the draft the screen edits in place.
	Data catalog.GenreFormData

	phase   Phase
	message string
}

// NewGenreForm builds the form view model. id 0 opens in create mode.
func NewGenreForm(genres ports.GenreGateway, id int) *GenreForm {
	if genres == nil {
		panic("genre gateway is required")
	}
	return &GenreForm{genres: genres, id: id, phase: PhaseLoading}
}

// IsEdit reports whether the form edits an existing genre.
func (vm *GenreForm) IsEdit() bool { return vm.id != 0 }

// Load fetches the existing genre in edit mode; create mode has no
// dependencies and goes straight to ready.
func (vm *GenreForm) Load(ctx context.Context) {
	vm.phase = PhaseLoading
	vm.message = ""

	if !vm.IsEdit() {
		vm.phase = PhaseReady
		return
	}

	genre, err := vm.genres.GetByID(ctx, vm.id)
	if err != nil {
		vm.phase = PhaseError
		vm.message = msgGenreLoadFailed
		return
	}

	vm.Data = catalog.GenreFormData{Nombre: genre.Nombre}
	vm.phase = PhaseReady
}

// Validate checks the draft: a genre requires a non-empty name.
func (vm *GenreForm) Validate() *apperror.ValidationError {
	if msg := validation.Required("El nombre")(vm.Data.Nombre); msg != "" {
		return &apperror.ValidationError{Field: "nombre", Message: msg}
	}
	return nil
}

// Submit validates and writes the draft; a validation failure never reaches
// the network.
func (vm *GenreForm) Submit(ctx context.Context) error {
	if vErr := vm.Validate(); vErr != nil {
		vm.message = vErr.Message
		return vErr
	}

	vm.phase = PhaseSubmitting
	vm.message = ""

	var err error
	if vm.IsEdit() {
		_, err = vm.genres.Update(ctx, vm.id, vm.Data)
	} else {
		_, err = vm.genres.Create(ctx, vm.Data)
	}

	if err != nil {
		vm.phase = PhaseReady
		if vm.IsEdit() {
			vm.message = msgGenreUpdateFailed
		} else {
			vm.message = msgGenreCreateFailed
		}
		return err
	}

	vm.phase = PhaseReady
	return nil
}

// Phase returns the current lifecycle state.
func (vm *GenreForm) Phase() Phase { return vm.phase }

// Message returns the pending user-facing message, if any.
func (vm *GenreForm) Message() string { return vm.message }
