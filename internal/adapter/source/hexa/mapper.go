package hexa

import "github.com/mmcdole/cinedex/internal/domain"

// MapMovies converts source movies to domain records, preserving order
func MapMovies(movies []Movie) []domain.MediaRecord {
	records := make([]domain.MediaRecord, 0, len(movies))
	for _, m := range movies {
		records = append(records, mapMovie(m))
	}
	return records
}

func mapMovie(m Movie) domain.MediaRecord {
	r := domain.MediaRecord{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		ReleaseDate:  m.ReleaseDate,
		Runtime:      m.Runtime,
		ImageURL:     m.BackdropWithTitle,
		Quality:      m.Quality,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		Tagline:      m.Tagline,
		Status:       m.Status,
		Genres:       make([]domain.Genre, 0, len(m.Genres)),
	}

	// Missing rating means unrated
	if m.VoteAverage != nil {
		r.Rating = *m.VoteAverage
	}

	// Fall back to the plain backdrop when no titled artwork exists
	if r.ImageURL == "" {
		r.ImageURL = m.BackdropPath
	}

	for _, g := range m.Genres {
		r.Genres = append(r.Genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return r
}
