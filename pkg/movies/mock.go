package movies

import (
	"context"
	"fmt"
	"slices"
)

// PlaceholderImage is served by the web server and used by the demo catalogue
const PlaceholderImage = "/static/placeholder.svg"

func ptr[T any](v T) *T {
	return &v
}

var catalogue = []FilmSummary{
	{
		ID:            1,
		Title:         "The Shawshank Redemption",
		PosterURL:     PlaceholderImage,
		VoteAverage:   ptr(9.3),
		Category:      CategoryTopRated,
		ReleaseDate:   "1994-09-22",
		OriginalTitle: "The Shawshank Redemption",
		Adult:         ptr(false),
	},
	{
		ID:            2,
		Title:         "The Godfather",
		PosterURL:     PlaceholderImage,
		VoteAverage:   ptr(9.2),
		Category:      CategoryTopRated,
		ReleaseDate:   "1972-03-24",
		OriginalTitle: "The Godfather",
		Adult:         ptr(false),
	},
	{
		ID:            3,
		Title:         "The Dark Knight",
		PosterURL:     PlaceholderImage,
		VoteAverage:   ptr(9.0),
		Category:      CategoryPopular,
		ReleaseDate:   "2008-07-18",
		OriginalTitle: "The Dark Knight",
		Adult:         ptr(false),
	},
	{
		ID:            4,
		Title:         "Spirited Away",
		PosterURL:     PlaceholderImage,
		VoteAverage:   ptr(8.5),
		Category:      CategoryPopular,
		ReleaseDate:   "2001-07-20",
		OriginalTitle: "千と千尋の神隠し",
		Adult:         ptr(false),
	},
	{
		ID:            5,
		Title:         "Project Hail Mary",
		PosterURL:     PlaceholderImage,
		Category:      CategoryUpcoming,
		ReleaseDate:   "2026-03-20",
		OriginalTitle: "Project Hail Mary",
		Adult:         ptr(false),
	},
}

// Mock serves a fixed demo catalogue. It is used when no TMDB credentials are configured.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Kind() string {
	return KindMock
}

func (m *Mock) Popular(ctx context.Context) ([]FilmSummary, error) {
	return byCategory(CategoryPopular), nil
}

func (m *Mock) TopRated(ctx context.Context) ([]FilmSummary, error) {
	return byCategory(CategoryTopRated), nil
}

func (m *Mock) Upcoming(ctx context.Context) ([]FilmSummary, error) {
	return byCategory(CategoryUpcoming), nil
}

func (m *Mock) Movie(ctx context.Context, id int) (Film, error) {
	i := slices.IndexFunc(catalogue, func(f FilmSummary) bool {
		return f.ID == id
	})
	if i < 0 {
		return Film{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return Film{
		FilmSummary: catalogue[i],
		Overview:    "A compelling story that captivates audiences worldwide with its incredible characters and masterful storytelling.",
		BackdropURL: PlaceholderImage,
		Runtime:     120,
		Genres: []Genre{
			{ID: 28, Name: "Action"},
			{ID: 35, Name: "Comedy"},
			{ID: 80, Name: "Crime"},
		},
		ProductionCompanies: []ProductionCompany{
			{ID: 1, Name: "Warner Bros. Pictures", LogoURL: PlaceholderImage, OriginCountry: "US"},
			{ID: 2, Name: "Legendary Entertainment", LogoURL: PlaceholderImage, OriginCountry: "US"},
		},
		Tagline:    "The adventure begins here.",
		Status:     "Released",
		Budget:     150000000,
		Revenue:    750000000,
		Popularity: 477.8545,
	}, nil
}

// byCategory copies the matching films so callers cannot modify the catalogue
func byCategory(c Category) []FilmSummary {
	films := []FilmSummary{}
	for _, f := range catalogue {
		if f.Category == c {
			films = append(films, f)
		}
	}
	return films
}
