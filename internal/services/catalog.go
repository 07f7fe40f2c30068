package services

import (
	"context"

	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/models"
)

// Catalog is the subset of the remote catalog the application depends on.
// *TMDB implements it.
type Catalog interface {
	Category(ctx context.Context, category constants.Category) ([]models.MovieSummary, error)
	Recommendations(ctx context.Context, id int) ([]models.MovieSummary, error)
	MovieDetails(ctx context.Context, id int) (*models.MovieDetail, error)
	MovieVideos(ctx context.Context, id int) ([]models.MovieVideo, error)
	Genres(ctx context.Context) ([]models.Genre, error)
	SearchKeywords(ctx context.Context, query string) ([]models.Keyword, error)
	SearchMovies(ctx context.Context, query string) ([]models.MovieSummary, error)
}

var _ Catalog = (*TMDB)(nil)
