package hexa

import "encoding/json"

// PageResponse is the envelope returned by GET /api/4k?page=N
type PageResponse struct {
	Success bool            `json:"success"`
	Movies  json.RawMessage `json:"movies"` // validated as an array before decoding
	Total   *int            `json:"total,omitempty"`
}

// Movie is a catalog entry as served by the source
type Movie struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	Overview          string     `json:"overview"`
	ReleaseDate       string     `json:"release_date"`
	Runtime           *int       `json:"runtime"`
	VoteAverage       *float64   `json:"vote_average"`
	PosterPath        string     `json:"poster_path,omitempty"`
	BackdropPath      string     `json:"backdrop_path,omitempty"`
	BackdropWithTitle string     `json:"backdrop_with_title,omitempty"`
	Genres            []GenreTag `json:"genres"`
	Status            string     `json:"status,omitempty"`
	Tagline           string     `json:"tagline,omitempty"`
	StreamingURL      string     `json:"streamingUrl,omitempty"`
	Quality           string     `json:"quality,omitempty"`
}

// GenreTag is a genre attached to a movie
type GenreTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
