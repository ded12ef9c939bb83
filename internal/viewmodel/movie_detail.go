package viewmodel

import (
	"context"

	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

const msgMovieLoadFailed = "No se pudo cargar la película."

// MovieDetail owns the state of the movie detail screen.
type MovieDetail struct {
	movies ports.MovieGateway
	id     int

	phase   Phase
	movie   catalog.Movie
	message string
}

// NewMovieDetail builds the detail view model for one movie.
func NewMovieDetail(movies ports.MovieGateway, id int) *MovieDetail {
	if movies == nil {
		panic("movie gateway is required")
	}
	return &MovieDetail{movies: movies, id: id, phase: PhaseLoading}
}

// Load fetches the movie. Call on entry and on re-entry after an edit pops
// back, so the detail reflects the write.
func (vm *MovieDetail) Load(ctx context.Context) {
	vm.phase = PhaseLoading
	vm.message = ""

	movie, err := vm.movies.GetByID(ctx, vm.id)
	if err != nil {
		vm.phase = PhaseError
		vm.message = msgMovieLoadFailed
		return
	}

	vm.movie = movie
	vm.phase = PhaseReady
}

// Phase returns the current lifecycle state.
func (vm *MovieDetail) Phase() Phase { return vm.phase }

// Movie returns the fetched movie.
func (vm *MovieDetail) Movie() catalog.Movie { return vm.movie }

// Message returns the pending user-facing message, if any.
func (vm *MovieDetail) Message() string { return vm.message }
