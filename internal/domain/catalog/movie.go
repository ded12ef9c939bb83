// Package catalog contains the front-end domain shapes for the movie catalog.
// Field names follow the shape the screens work with (sinopsis, trailer,
// generoId); translation to the backend wire shape (descripcion, trailerLink,
// nested genero) is the API adapter's job.
package catalog

import "time"

// Movie is the front-end movie shape. GeneroID is 0 when the backend record
// carries no embedded genre; missing scalars arrive as zero values, so an
// absent field and an explicitly-zero field are indistinguishable after
// adaptation.
type Movie struct {
	ID       int     `json:"id"`
	Titulo   string  `json:"titulo"`
	Director string  `json:"director"`
	Anio     int     `json:"anio"`
	Rating   float64 `json:"rating"`
	Sinopsis string  `json:"sinopsis"`
	Duracion int     `json:"duracion"`
	Trailer  string  `json:"trailer"`
	Genero   *Genre  `json:"genero,omitempty"`
	GeneroID int     `json:"generoId"`
}

// MovieFormData is the mutable draft a create/edit form owns. It is
// initialized from NewMovieFormData (create) or FormDataFromMovie (edit) and
// discarded on submit or cancel.
type MovieFormData struct {
	Titulo   string
	Director string
	Anio     int
	Rating   float64
	Sinopsis string
	Duracion int
	Trailer  string
	GeneroID int
}

// Form defaults for a fresh draft.
const (
	defaultRating   = 5.0
	defaultDuracion = 90
)

// NewMovieFormData returns a draft pre-filled with the create-mode defaults.
func NewMovieFormData() MovieFormData {
	return MovieFormData{
		Anio:     time.Now().Year(),
		Rating:   defaultRating,
		Duracion: defaultDuracion,
	}
}

// FormDataFromMovie copies a fetched movie's editable fields into a draft.
func FormDataFromMovie(m Movie) MovieFormData {
	return MovieFormData{
		Titulo:   m.Titulo,
		Director: m.Director,
		Anio:     m.Anio,
		Rating:   m.Rating,
		Sinopsis: m.Sinopsis,
		Duracion: m.Duracion,
		Trailer:  m.Trailer,
		GeneroID: m.GeneroID,
	}
}
