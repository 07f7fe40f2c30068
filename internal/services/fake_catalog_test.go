package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/models"
)

var errFake = errors.New("fake catalog failure")

type fakeCatalog struct {
	lists map[constants.Category][]models.MovieSummary
	fail  map[constants.Category]bool

	keywordsFn func(ctx context.Context, query string) ([]models.Keyword, error)
	moviesFn   func(ctx context.Context, query string) ([]models.MovieSummary, error)

	detail    *models.MovieDetail
	detailErr error
	videos    []models.MovieVideo
	videosErr error
	recs      []models.MovieSummary
	recsErr   error
	genres    []models.Genre

	keywordCalls atomic.Int32
	movieCalls   atomic.Int32
}

func (f *fakeCatalog) Category(_ context.Context, category constants.Category) ([]models.MovieSummary, error) {
	if f.fail[category] {
		return nil, errFake
	}
	return f.lists[category], nil
}

func (f *fakeCatalog) Recommendations(context.Context, int) ([]models.MovieSummary, error) {
	return f.recs, f.recsErr
}

func (f *fakeCatalog) MovieDetails(context.Context, int) (*models.MovieDetail, error) {
	return f.detail, f.detailErr
}

func (f *fakeCatalog) MovieVideos(context.Context, int) ([]models.MovieVideo, error) {
	return f.videos, f.videosErr
}

func (f *fakeCatalog) Genres(context.Context) ([]models.Genre, error) {
	return f.genres, nil
}

func (f *fakeCatalog) SearchKeywords(ctx context.Context, query string) ([]models.Keyword, error) {
	f.keywordCalls.Add(1)
	if f.keywordsFn == nil {
		return []models.Keyword{{ID: 1, Name: query}}, nil
	}
	return f.keywordsFn(ctx, query)
}

func (f *fakeCatalog) SearchMovies(ctx context.Context, query string) ([]models.MovieSummary, error) {
	f.movieCalls.Add(1)
	if f.moviesFn == nil {
		return []models.MovieSummary{{ID: 99, Title: query}}, nil
	}
	return f.moviesFn(ctx, query)
}

func summaries(ids ...int) []models.MovieSummary {
	out := make([]models.MovieSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.MovieSummary{ID: id, GenreIDs: []int{id % 3}})
	}
	return out
}

func ids(movies []models.MovieSummary) []int {
	out := make([]int, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}
