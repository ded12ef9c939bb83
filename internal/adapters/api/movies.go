package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/filmoteca/filmoteca-cli/internal/domain/catalog"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

// MovieGateway is the stateless operation set over /peliculas. Reads adapt
// the backend record into the front-end shape; writes adapt the draft back.
type MovieGateway struct {
	client *Client
}

// NewMovieGateway builds a MovieGateway over the shared client.
func NewMovieGateway(client *Client) *MovieGateway {
	if client == nil {
		panic("api client is required")
	}
	return &MovieGateway{client: client}
}

var _ ports.MovieGateway = (*MovieGateway)(nil)

// movieRecord is the backend movie shape. Fields the backend omits decode to
// zero values, which is exactly the defaulting the adaptation specifies:
// "absent" and "explicitly zero" collapse, an accepted lossy simplification.
type movieRecord struct {
	ID          int            `json:"id"`
	Titulo      string         `json:"titulo"`
	Director    string         `json:"director"`
	Anio        int            `json:"anio"`
	Rating      float64        `json:"rating"`
	Descripcion string         `json:"descripcion"`
	Duracion    int            `json:"duracion"`
	TrailerLink string         `json:"trailerLink"`
	Genero      *catalog.Genre `json:"genero"`
}

// moviePayload is the backend write shape. GeneroID travels re-nested as
// {"id": generoId}.
type moviePayload struct {
	Titulo      string   `json:"titulo"`
	Director    string   `json:"director"`
	Anio        int      `json:"anio"`
	Descripcion string   `json:"descripcion"`
	Duracion    int      `json:"duracion"`
	Rating      float64  `json:"rating"`
	TrailerLink string   `json:"trailerLink"`
	Genero      genreRef `json:"genero"`
}

type genreRef struct {
	ID int `json:"id"`
}

// adaptMovie performs the fixed field rename: descripcion→sinopsis,
// trailerLink→trailer, genero.id→generoId (0 when the genre is absent).
func adaptMovie(rec movieRecord) catalog.Movie {
	m := catalog.Movie{
		ID:       rec.ID,
		Titulo:   rec.Titulo,
		Director: rec.Director,
		Anio:     rec.Anio,
		Rating:   rec.Rating,
		Sinopsis: rec.Descripcion,
		Duracion: rec.Duracion,
		Trailer:  rec.TrailerLink,
		Genero:   rec.Genero,
	}
	if rec.Genero != nil {
		m.GeneroID = rec.Genero.ID
	}
	return m
}

// adaptFormData performs the reverse rename for outgoing writes.
func adaptFormData(data catalog.MovieFormData) moviePayload {
	return moviePayload{
		Titulo:      data.Titulo,
		Director:    data.Director,
		Anio:        data.Anio,
		Descripcion: data.Sinopsis,
		Duracion:    data.Duracion,
		Rating:      data.Rating,
		TrailerLink: data.Trailer,
		Genero:      genreRef{ID: data.GeneroID},
	}
}

func (g *MovieGateway) List(ctx context.Context) ([]catalog.Movie, error) {
	var records []movieRecord
	if err := g.client.call(ctx, http.MethodGet, "/peliculas", nil, &records, "list movies"); err != nil {
		return nil, err
	}

	movies := make([]catalog.Movie, 0, len(records))
	for _, rec := range records {
		movies = append(movies, adaptMovie(rec))
	}
	return movies, nil
}

func (g *MovieGateway) GetByID(ctx context.Context, id int) (catalog.Movie, error) {
	var rec movieRecord
	path := fmt.Sprintf("/peliculas/%d", id)
	if err := g.client.call(ctx, http.MethodGet, path, nil, &rec, "get movie"); err != nil {
		return catalog.Movie{}, err
	}
	return adaptMovie(rec), nil
}

func (g *MovieGateway) Create(ctx context.Context, data catalog.MovieFormData) (catalog.Movie, error) {
	var rec movieRecord
	if err := g.client.call(ctx, http.MethodPost, "/peliculas", adaptFormData(data), &rec, "create movie"); err != nil {
		return catalog.Movie{}, err
	}
	return adaptMovie(rec), nil
}

func (g *MovieGateway) Update(ctx context.Context, id int, data catalog.MovieFormData) (catalog.Movie, error) {
	var rec movieRecord
	path := fmt.Sprintf("/peliculas/%d", id)
	if err := g.client.call(ctx, http.MethodPut, path, adaptFormData(data), &rec, "update movie"); err != nil {
		return catalog.Movie{}, err
	}
	return adaptMovie(rec), nil
}

func (g *MovieGateway) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/peliculas/%d", id)
	return g.client.call(ctx, http.MethodDelete, path, nil, nil, "delete movie")
}
