package movies

import (
	"strings"

	"github.com/kasuboski/moviez/pkg/tmdb"
)

// DefaultImageBase serves TMDB images
const DefaultImageBase = "https://image.tmdb.org/t/p"

const (
	posterSize   = "w342"
	backdropSize = "w780"
	logoSize     = "w92"
)

// ImageURL joins base, size and path. A missing path yields "".
func ImageURL(base, size string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + size + *path
}

// FromTMDBMovie maps a list record. The title falls back to the name field.
func FromTMDBMovie(m tmdb.Movie, imageBase string, c Category) FilmSummary {
	title := ""
	switch {
	case m.Title != nil:
		title = *m.Title
	case m.Name != nil:
		title = *m.Name
	}

	return FilmSummary{
		ID:            m.ID,
		Title:         title,
		PosterURL:     ImageURL(imageBase, posterSize, m.PosterPath),
		VoteAverage:   m.VoteAverage,
		ReleaseDate:   m.ReleaseDate,
		OriginalTitle: m.OriginalTitle,
		Adult:         m.Adult,
		Category:      c,
	}
}

// FromTMDBMovieDetails maps a detail record
func FromTMDBMovieDetails(det tmdb.MovieDetails, imageBase string) Film {
	f := Film{
		FilmSummary: FromTMDBMovie(det.Movie, imageBase, ""),
		Overview:    det.Overview,
		BackdropURL: ImageURL(imageBase, backdropSize, det.BackdropPath),
		Tagline:     det.Tagline,
		Status:      det.Status,
		Budget:      det.Budget,
		Revenue:     det.Revenue,
		Popularity:  det.Popularity,
	}

	if det.Runtime != nil {
		f.Runtime = *det.Runtime
	}

	for _, g := range det.Genres {
		f.Genres = append(f.Genres, Genre{ID: g.ID, Name: g.Name})
	}

	for _, pc := range det.ProductionCompanies {
		f.ProductionCompanies = append(f.ProductionCompanies, ProductionCompany{
			ID:            pc.ID,
			Name:          pc.Name,
			LogoURL:       ImageURL(imageBase, logoSize, pc.LogoPath),
			OriginCountry: pc.OriginCountry,
		})
	}

	return f
}
