// Package mocks provides mock implementations for testing against the port
// interfaces.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks.
// The generated files are committed; to regenerate after interface changes:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	movies := mocks.NewMockMovieGateway(ctrl)
//	movies.EXPECT().List(gomock.Any()).Return(fixtures, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/filmoteca/filmoteca-cli/internal/ports SessionStore

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_gateway_mock.go github.com/filmoteca/filmoteca-cli/internal/ports AuthGateway

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=movie_gateway_mock.go github.com/filmoteca/filmoteca-cli/internal/ports MovieGateway

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=genre_gateway_mock.go github.com/filmoteca/filmoteca-cli/internal/ports GenreGateway
