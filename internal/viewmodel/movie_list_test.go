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

func TestMovieList_LoadTransitionsToReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	fixtures := []catalog.Movie{{ID: 1, Titulo: "X"}}
	movies.EXPECT().List(gomock.Any()).Return(fixtures, nil)

	vm := NewMovieList(movies)
	assert.Equal(t, PhaseLoading, vm.Phase())

	vm.Load(context.Background())

	assert.Equal(t, PhaseReady, vm.Phase())
	assert.Equal(t, fixtures, vm.Items())
	assert.Empty(t, vm.Message())
}

func TestMovieList_LoadFailureKeepsStaleItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	first := []catalog.Movie{{ID: 1, Titulo: "X"}}
	gomock.InOrder(
		movies.EXPECT().List(gomock.Any()).Return(first, nil),
		movies.EXPECT().List(gomock.Any()).
			Return(nil, &apperror.RequestError{Op: "list movies", Err: errors.New("down")}),
	)

	vm := NewMovieList(movies)
	ctx := context.Background()

	vm.Load(ctx) // screen entry
	vm.Load(ctx) // focus re-entry, backend now down

	assert.Equal(t, PhaseError, vm.Phase())
	assert.Equal(t, first, vm.Items())
	assert.Equal(t, msgMoviesLoadFailed, vm.Message())
}

func TestMovieList_ReentryFetchesExactlyOncePerEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	movies.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)

	vm := NewMovieList(movies)
	ctx := context.Background()
	vm.Load(ctx)
	vm.Load(ctx)
}

func TestMovieList_DeleteSuccessRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	after := []catalog.Movie{{ID: 2, Titulo: "Y"}}
	gomock.InOrder(
		movies.EXPECT().Delete(gomock.Any(), 1).Return(nil),
		movies.EXPECT().List(gomock.Any()).Return(after, nil),
	)

	vm := NewMovieList(movies)
	require.NoError(t, vm.Delete(context.Background(), 1))
	assert.Equal(t, PhaseReady, vm.Phase())
	assert.Equal(t, after, vm.Items())
}

func TestMovieList_DeleteFailureReturnsToReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movies := mocks.NewMockMovieGateway(ctrl)
	items := []catalog.Movie{{ID: 1, Titulo: "X"}}
	gomock.InOrder(
		movies.EXPECT().List(gomock.Any()).Return(items, nil),
		movies.EXPECT().Delete(gomock.Any(), 1).
			Return(&apperror.RequestError{Op: "delete movie", StatusCode: 500, Err: errors.New("boom")}),
	)

	vm := NewMovieList(movies)
	ctx := context.Background()
	vm.Load(ctx)

	err := vm.Delete(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, PhaseReady, vm.Phase())
	assert.Equal(t, items, vm.Items())
	assert.Equal(t, msgMovieDeleteFailed, vm.Message())
}
