package viewmodel

import (
	"context"

	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

// User-facing messages for the movie screens.
const (
	msgMoviesLoadFailed  = "No se pudieron cargar las películas. Intenta de nuevo más tarde."
	msgMovieDeleteFailed = "No se pudo eliminar la película."
)

// MovieList owns the state of the movie list screen.
type MovieList struct {
	movies ports.MovieGateway

	phase   Phase
	items   []catalog.Movie
	message string
}

// NewMovieList builds the movie list view model.
func NewMovieList(movies ports.MovieGateway) *MovieList {
	if movies == nil {
		panic("movie gateway is required")
	}
	return &MovieList{movies: movies, phase: PhaseLoading}
}

// Load fetches the list. Call it on every screen entry, including re-entry
// after a form or detail screen pops back. On failure the previous items are
// kept so the screen can show stale data under the error message.
func (vm *MovieList) Load(ctx context.Context) {
	vm.phase = PhaseLoading
	vm.message = ""

	items, err := vm.movies.List(ctx)
	if err != nil {
		vm.phase = PhaseError
		vm.message = msgMoviesLoadFailed
		return
	}

	vm.items = items
	vm.phase = PhaseReady
}

// Delete issues the destructive call. The yes/no confirmation gate is the
// screen's responsibility and must have happened already. On success the
// list is re-fetched whole; on failure the screen stays on its current data
// with a message.
func (vm *MovieList) Delete(ctx context.Context, id int) error {
	vm.phase = PhaseSubmitting
	vm.message = ""

	if err := vm.movies.Delete(ctx, id); err != nil {
		vm.phase = PhaseReady
		vm.message = msgMovieDeleteFailed
		return err
	}

	vm.Load(ctx)
	return nil
}

// Phase returns the current lifecycle state.
func (vm *MovieList) Phase() Phase { return vm.phase }

// Items returns the fetched movies.
func (vm *MovieList) Items() []catalog.Movie { return vm.items }

// Message returns the pending user-facing message, if any.
func (vm *MovieList) Message() string { return vm.message }
