package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

// GenreGateway is the stateless operation set over /generos. Genre records
// pass through without renaming.
type GenreGateway struct {
	client *Client
}

// NewGenreGateway builds a GenreGateway over the shared client.
func NewGenreGateway(client *Client) *GenreGateway {
	if client == nil {
		panic("api client is required")
	}
	return &GenreGateway{client: client}
}

var _ ports.GenreGateway = (*GenreGateway)(nil)

type genrePayload struct {
	Nombre string `json:"nombre"`
}

func (g *GenreGateway) List(ctx context.Context) ([]catalog.Genre, error) {
	var genres []catalog.Genre
	if err := g.client.call(ctx, http.MethodGet, "/generos", nil, &genres, "list genres"); err != nil {
		return nil, err
	}
	return genres, nil
}

func (g *GenreGateway) GetByID(ctx context.Context, id int) (catalog.Genre, error) {
	var genre catalog.Genre
	path := fmt.Sprintf("/generos/%d", id)
	if err := g.client.call(ctx, http.MethodGet, path, nil, &genre, "get genre"); err != nil {
		return catalog.Genre{}, err
	}
	return genre, nil
}

func (g *GenreGateway) Create(ctx context.Context, data catalog.GenreFormData) (catalog.Genre, error) {
	var genre catalog.Genre
	if err := g.client.call(ctx, http.MethodPost, "/generos", genrePayload{Nombre: data.Nombre}, &genre, "create genre"); err != nil {
		return catalog.Genre{}, err
	}
	return genre, nil
}

func (g *GenreGateway) Update(ctx context.Context, id int, data catalog.GenreFormData) (catalog.Genre, error) {
	var genre catalog.Genre
	path := fmt.Sprintf("/generos/%d", id)
	if err := g.client.call(ctx, http.MethodPut, path, genrePayload{Nombre: data.Nombre}, &genre, "update genre"); err != nil {
		return catalog.Genre{}, err
	}
	return genre, nil
}

func (g *GenreGateway) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/generos/%d", id)
	return g.client.call(ctx, http.MethodDelete, path, nil, nil, "delete genre")
}
