package viewmodel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
	"github.com/filmoteca/filmoteca-cli/internal/validation"
)

// User-facing messages for the movie form.
const (
	msgFormLoadFailed    = "No se pudieron cargar los datos necesarios."
	msgMovieCreateFailed = "No se pudo crear la película."
	msgMovieUpdateFailed = "No se pudo actualizar la película."
	msgGenreRequired     = "Debes seleccionar un género"
)

// MovieForm owns the create/edit movie form: the mutable draft, the genre
// choices, and the submit lifecycle. The draft is discarded with the view
// model on submit or cancel; it is never persisted.
type MovieForm struct {
	movies ports.MovieGateway
	genres ports.GenreGateway
	id     int // 0 means create

	// Data is the draft the screen edits in place.
	Data catalog.MovieFormData

	phase     Phase
	genreList []catalog.Genre
	message   string
}

// NewMovieForm builds the form view model. id 0 opens in create mode with
// default draft values; a non-zero id opens in edit mode.
func NewMovieForm(movies ports.MovieGateway, genres ports.GenreGateway, id int) *MovieForm {
	if movies == nil {
		panic("movie gateway is required")
	}
	if genres == nil {
		panic("genre gateway is required")
	}
	return &MovieForm{
		movies: movies,
		genres: genres,
		id:     id,
		Data:   catalog.NewMovieFormData(),
		phase:  PhaseLoading,
	}
}

// IsEdit reports whether the form edits an existing movie.
func (vm *MovieForm) IsEdit() bool { return vm.id != 0 }

// Load fetches the form dependencies: the genre list, plus the movie itself
// in edit mode. Both fetches run concurrently; either failing fails the load.
func (vm *MovieForm) Load(ctx context.Context) {
	vm.phase = PhaseLoading
	vm.message = ""

	g, gctx := errgroup.WithContext(ctx)

	var genreList []catalog.Genre
	g.Go(func() error {
		list, err := vm.genres.List(gctx)
		if err != nil {
			return err
		}
		genreList = list
		return nil
	})

	var draft catalog.MovieFormData
	if vm.IsEdit() {
		g.Go(func() error {
			movie, err := vm.movies.GetByID(gctx, vm.id)
			if err != nil {
				return err
			}
			draft = catalog.FormDataFromMovie(movie)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		vm.phase = PhaseError
		vm.message = msgFormLoadFailed
		return
	}

	vm.genreList = genreList
	if vm.IsEdit() {
		vm.Data = draft
	}
	vm.phase = PhaseReady
}

// Validate runs the pre-submit checks: non-empty titulo and director, and a
// selected genre whenever at least one genre exists. Numeric fields are not
// range-checked here: a record whose absent fields collapsed to zero on read
// must stay editable and submittable as-is.
func (vm *MovieForm) Validate() *apperror.ValidationError {
	fv := validation.New().
		Validate("titulo", vm.Data.Titulo, validation.Required("El título")).
		Validate("director", vm.Data.Director, validation.Required("El director"))

	if field, msg := fv.First(); field != "" {
		return &apperror.ValidationError{Field: field, Message: msg}
	}

	if vm.Data.GeneroID == 0 && len(vm.genreList) > 0 {
		return &apperror.ValidationError{Field: "generoId", Message: msgGenreRequired}
	}
	return nil
}

// Submit validates and writes the draft. A validation failure blocks the
// submit entirely; no network call is made. A backend failure keeps the
// form editable with a message; success leaves the screen free to navigate
// back.
func (vm *MovieForm) Submit(ctx context.Context) error {
	if vErr := vm.Validate(); vErr != nil {
		vm.message = vErr.Message
		return vErr
	}

	vm.phase = PhaseSubmitting
	vm.message = ""

	var err error
	if vm.IsEdit() {
		_, err = vm.movies.Update(ctx, vm.id, vm.Data)
	} else {
		_, err = vm.movies.Create(ctx, vm.Data)
	}

	if err != nil {
		vm.phase = PhaseReady
		if vm.IsEdit() {
			vm.message = msgMovieUpdateFailed
		} else {
			vm.message = msgMovieCreateFailed
		}
		return err
	}

	vm.phase = PhaseReady
	return nil
}

// Phase returns the current lifecycle state.
func (vm *MovieForm) Phase() Phase { return vm.phase }

// Genres returns the loaded genre choices.
func (vm *MovieForm) Genres() []catalog.Genre { return vm.genreList }

// Message returns the pending user-facing message, if any.
func (vm *MovieForm) Message() string { return vm.message }
