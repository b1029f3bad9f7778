package tmdb

// Movie is a film as it appears in TMDB list responses
type Movie struct {
	ID            int      `json:"id"`
	Title         *string  `json:"title,omitempty"`
	Name          *string  `json:"name,omitempty"`
	PosterPath    *string  `json:"poster_path,omitempty"`
	BackdropPath  *string  `json:"backdrop_path,omitempty"`
	Overview      string   `json:"overview,omitempty"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	VoteAverage   *float64 `json:"vote_average,omitempty"`
	VoteCount     int      `json:"vote_count,omitempty"`
	OriginalTitle string   `json:"original_title,omitempty"`
	Adult         *bool    `json:"adult,omitempty"`
	Popularity    float64  `json:"popularity,omitempty"`
}

// MovieList is a page of a movie list endpoint
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProductionCompany struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path,omitempty"`
	OriginCountry string  `json:"origin_country,omitempty"`
}

// MovieDetails is the response of /movie/{id}
type MovieDetails struct {
	Movie
	Runtime             *int                `json:"runtime,omitempty"`
	Genres              []Genre             `json:"genres,omitempty"`
	ProductionCompanies []ProductionCompany `json:"production_companies,omitempty"`
	Tagline             string              `json:"tagline,omitempty"`
	Status              string              `json:"status,omitempty"`
	Budget              int64               `json:"budget,omitempty"`
	Revenue             int64               `json:"revenue,omitempty"`
	ImdbID              *string             `json:"imdb_id,omitempty"`
}
