package viewmodel

import (
	"context"

	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

// User-facing messages for the genre screens.
const (
	msgGenresLoadFailed = "No se pudieron cargar los géneros. Intenta de nuevo más tarde."
	// A genre still referenced by a movie cannot be removed; the backend
	// sends no structured conflict code, so the message stays generic.
	msgGenreDeleteFailed = "No se pudo eliminar el género. Puede estar en uso."
)

// GenreList owns the state of the genre list screen.
type GenreList struct {
	genres ports.GenreGateway

	phase   Phase
	items   []catalog.Genre
	message string
}

// NewGenreList builds the genre list view model.
func NewGenreList(genres ports.GenreGateway) *GenreList {
	if genres == nil {
		panic("genre gateway is required")
	}
	return &GenreList{genres: genres, phase: PhaseLoading}
}

// Load fetches the list; same re-entry contract as the movie list.
func (vm *GenreList) Load(ctx context.Context) {
	vm.phase = PhaseLoading
	vm.message = ""

	items, err := vm.genres.List(ctx)
	if err != nil {
		vm.phase = PhaseError
		vm.message = msgGenresLoadFailed
		return
	}

	vm.items = items
	vm.phase = PhaseReady
}

// Delete issues the destructive call after the screen's confirmation gate.
// On failure the listed items are untouched.
func (vm *GenreList) Delete(ctx context.Context, id int) error {
	vm.phase = PhaseSubmitting
	vm.message = ""

	if err := vm.genres.Delete(ctx, id); err != nil {
		vm.phase = PhaseReady
		vm.message = msgGenreDeleteFailed
		return err
	}

	vm.Load(ctx)
	return nil
}

// Phase returns the current lifecycle state.
func (vm *GenreList) Phase() Phase { return vm.phase }

// Items returns the fetched genres.
func (vm *GenreList) Items() []catalog.Genre { return vm.items }

// Message returns the pending user-facing message, if any.
func (vm *GenreList) Message() string { return vm.message }
