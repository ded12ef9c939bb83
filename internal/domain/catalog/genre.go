package catalog

// Genre is served by the backend as-is; no field adaptation applies.
type Genre struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// GenreFormData is the mutable draft a genre create/edit form owns.
type GenreFormData struct {
	Nombre string
}
