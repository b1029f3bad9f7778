package movies

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kasuboski/moviez/pkg/date"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNotFound        = errors.New("movie not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// Category groups films into the lists shown on the home page
type Category string

const (
	CategoryPopular  Category = "popular"
	CategoryTopRated Category = "top-rated"
	CategoryUpcoming Category = "upcoming"
)

// Categories in the order they are displayed
var Categories = []Category{CategoryPopular, CategoryTopRated, CategoryUpcoming}

// ParseCategory validates s as a Category
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Label is the human readable name of the category, e.g. "Top Rated"
func (c Category) Label() string {
	// a Caser keeps state, so one is made per call
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "-", " "))
}

// FilmSummary is the display record of a film in a list
type FilmSummary struct {
	ID            int      `json:"id" validate:"required,gt=0"`
	Title         string   `json:"title" validate:"required"`
	PosterURL     string   `json:"posterPath,omitempty"`
	VoteAverage   *float64 `json:"voteAverage,omitempty" validate:"omitempty,gte=0,lte=10"`
	ReleaseDate   string   `json:"releaseDate,omitempty"`
	OriginalTitle string   `json:"originalTitle,omitempty"`
	Adult         *bool    `json:"isAdult,omitempty"`
	Category      Category `json:"category,omitempty" validate:"omitempty,oneof=popular top-rated upcoming"`
}

// Year of release, or "" when the release date is missing or malformed
func (f FilmSummary) Year() string {
	return date.Year(f.ReleaseDate)
}

// Rating formats the vote average with one decimal, or "" when absent
func (f FilmSummary) Rating() string {
	if f.VoteAverage == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *f.VoteAverage)
}

// IsAdult reports whether the film is flagged as mature content
func (f FilmSummary) IsAdult() bool {
	return f.Adult != nil && *f.Adult
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProductionCompany struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoURL       string `json:"logoPath,omitempty"`
	OriginCountry string `json:"originCountry,omitempty"`
}

// Film is the full record shown on a detail page
type Film struct {
	FilmSummary
	Overview            string              `json:"overview,omitempty"`
	BackdropURL         string              `json:"backdropPath,omitempty"`
	Runtime             int                 `json:"runtime,omitempty"`
	Genres              []Genre             `json:"genres,omitempty"`
	ProductionCompanies []ProductionCompany `json:"productionCompanies,omitempty"`
	Tagline             string              `json:"tagline,omitempty"`
	Status              string              `json:"status,omitempty"`
	Budget              int64               `json:"budget,omitempty"`
	Revenue             int64               `json:"revenue,omitempty"`
	Popularity          float64             `json:"popularity,omitempty"`
}

// Home holds the three lists shown on the home page
type Home struct {
	Popular  []FilmSummary `json:"popular"`
	TopRated []FilmSummary `json:"topRated"`
	Upcoming []FilmSummary `json:"upcoming"`
}

// List returns the films of category c
func (h Home) List(c Category) []FilmSummary {
	switch c {
	case CategoryPopular:
		return h.Popular
	case CategoryTopRated:
		return h.TopRated
	case CategoryUpcoming:
		return h.Upcoming
	}
	return nil
}
