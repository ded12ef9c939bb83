package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/mocks"
)

func TestMovieForm_CreateModeLoadsGenresOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	genres := mocks.NewMockGenreGateway(ctrl)
	genreList := []catalog.Genre{{ID: 1, Nombre: "Drama"}}
	genres.EXPECT().List(gomock.Any()).Return(genreList, nil)
	movies.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	vm := NewMovieForm(movies, genres, 0)
	vm.Load(context.Background())

	assert.Equal(t, PhaseReady, vm.Phase())
	assert.Equal(t, genreList, vm.Genres())
	assert.False(t, vm.IsEdit())

	// Create-mode draft starts from the form defaults.
	assert.Equal(t, 5.0, vm.Data.Rating)
	assert.Equal(t, 90, vm.Data.Duracion)
	assert.Empty(t, vm.Data.Titulo)
}

func TestMovieForm_EditModeLoadsDraftFromMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	genres := mocks.NewMockGenreGateway(ctrl)
	genres.EXPECT().List(gomock.Any()).Return([]catalog.Genre{{ID: 5, Nombre: "Drama"}}, nil)
	movies.EXPECT().GetByID(gomock.Any(), 7).Return(catalog.Movie{
		ID: 7, Titulo: "X", Director: "D", Anio: 2020, Sinopsis: "s", GeneroID: 5,
	}, nil)

	vm := NewMovieForm(movies, genres, 7)
	vm.Load(context.Background())

	require.Equal(t, PhaseReady, vm.Phase())
	assert.True(t, vm.IsEdit())
	assert.Equal(t, "X", vm.Data.Titulo)
	assert.Equal(t, "s", vm.Data.Sinopsis)
	assert.Equal(t, 5, vm.Data.GeneroID)
}

func TestMovieForm_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	genres := mocks.NewMockGenreGateway(ctrl)
	genres.EXPECT().List(gomock.Any()).
		Return(nil, &apperror.RequestError{Op: "list genres", Err: errors.New("down")})

	vm := NewMovieForm(movies, genres, 0)
	vm.Load(context.Background())

	assert.Equal(t, PhaseError, vm.Phase())
	assert.Equal(t, msgFormLoadFailed, vm.Message())
}

func TestMovieForm_EmptyTituloNeverReachesNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	genres := mocks.NewMockGenreGateway(ctrl)
	genres.EXPECT().List(gomock.Any()).Return([]catalog.Genre{{ID: 1, Nombre: "Drama"}}, nil)
	movies.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	movies.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	vm := NewMovieForm(movies, genres, 0)
	vm.Load(context.Background())
	vm.Data.Titulo = ""
	vm.Data.Director = "Scott"
	vm.Data.GeneroID = 1

	err := vm.Submit(context.Background())
	var vErr *apperror.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "titulo", vErr.Field)
	assert.Equal(t, "El título es obligatorio", vm.Message())
}

func TestMovieForm_GenreRequiredOnlyWhenGenresExist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	genres := mocks.NewMockGenreGateway(ctrl)

	// No genres on the backend: generoId 0 passes validation.
	genres.EXPECT().List(gomock.Any()).Return(nil, nil)
	vm := NewMovieForm(movies, genres, 0)
	vm.Load(context.Background())
	vm.Data.Titulo = "T"
	vm.Data.Director = "D"
	assert.Nil(t, vm.Validate())

	// Genres exist: generoId 0 is a validation failure.
	genres.EXPECT().List(gomock.Any()).Return([]catalog.Genre{{ID: 1, Nombre: "Drama"}}, nil)
	vm2 := NewMovieForm(movies, genres, 0)
	vm2.Load(context.Background())
	vm2.Data.Titulo = "T"
	vm2.Data.Director = "D"

	vErr := vm2.Validate()
	require.NotNil(t, vErr)
	assert.Equal(t, msgGenreRequired, vErr.Message)
}

func TestMovieForm_SubmitCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	genres := mocks.NewMockGenreGateway(ctrl)
	genres.EXPECT().List(gomock.Any()).Return([]catalog.Genre{{ID: 1, Nombre: "Drama"}}, nil)
	movies.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data catalog.MovieFormData) (catalog.Movie, error) {
			assert.Equal(t, "Alien", data.Titulo)
			return catalog.Movie{ID: 9, Titulo: data.Titulo}, nil
		})

	vm := NewMovieForm(movies, genres, 0)
	vm.Load(context.Background())
	vm.Data.Titulo = "Alien"
	vm.Data.Director = "Scott"
	vm.Data.GeneroID = 1

	require.NoError(t, vm.Submit(context.Background()))
	assert.Equal(t, PhaseReady, vm.Phase())
	assert.Empty(t, vm.Message())
}

func TestMovieForm_SubmitUpdateFailureStaysEditing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	genres := mocks.NewMockGenreGateway(ctrl)
	genres.EXPECT().List(gomock.Any()).Return([]catalog.Genre{{ID: 5, Nombre: "Drama"}}, nil)
	movies.EXPECT().GetByID(gomock.Any(), 7).
		Return(catalog.Movie{ID: 7, Titulo: "X", Director: "D", GeneroID: 5}, nil)
	movies.EXPECT().Update(gomock.Any(), 7, gomock.Any()).
		Return(catalog.Movie{}, &apperror.RequestError{Op: "update movie", StatusCode: 500, Err: errors.New("boom")})

	vm := NewMovieForm(movies, genres, 7)
	vm.Load(context.Background())

	err := vm.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, PhaseReady, vm.Phase())
	assert.Equal(t, msgMovieUpdateFailed, vm.Message())
	// The draft survives so the user can retry.
	assert.Equal(t, "X", vm.Data.Titulo)
}
