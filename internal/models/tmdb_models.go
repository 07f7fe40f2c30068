// Package models defines data structures for TMDB API responses and the
// records derived from them.
package models

// MovieSummary is one entry of a TMDB list endpoint.
type MovieSummary struct {
	ID           int     `json:"id" validate:"gt=0"`
	Title        string  `json:"title"`
	BackdropPath string  `json:"backdrop_path"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average" validate:"gte=0,lte=10"`
	ReleaseDate  string  `json:"release_date"`
	GenreIDs     []int   `json:"genre_ids"`
}

// HasGenre reports whether genreID is among the movie's genre ids.
func (m MovieSummary) HasGenre(genreID int) bool {
	for _, id := range m.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}

type MovieListResponse struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type Genre struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name"`
}

type GenreResponse struct {
	Genres []Genre `json:"genres"`
}

type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type KeywordResponse struct {
	Page         int       `json:"page"`
	Results      []Keyword `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

type MovieDetail struct {
	ID           int     `json:"id" validate:"gt=0"`
	Title        string  `json:"title"`
	BackdropPath string  `json:"backdrop_path"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average" validate:"gte=0,lte=10"`
	VoteCount    int     `json:"vote_count"`
	ReleaseDate  string  `json:"release_date"`
	Genres       []Genre `json:"genres"`
	Runtime      int     `json:"runtime"`
	Tagline      string  `json:"tagline"`
	Status       string  `json:"status"`
	Budget       int64   `json:"budget"`
	Revenue      int64   `json:"revenue"`
}

type MovieVideo struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type VideoResponse struct {
	ID      int          `json:"id"`
	Results []MovieVideo `json:"results"`
}
