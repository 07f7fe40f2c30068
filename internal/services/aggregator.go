package services

import (
	"context"
	"sync"

	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/pkg/logger"
)

// Aggregator loads the four home page lists concurrently.
type Aggregator struct {
	catalog Catalog
	logger  logger.Logger
}

func NewAggregator(catalog Catalog, log logger.Logger) *Aggregator {
	return &Aggregator{catalog: catalog, logger: log}
}

// Load fetches every home category in parallel and returns once all of them
// have settled. A failed fetch is logged and contributes an empty list; it
// never cancels the others.
func (a *Aggregator) Load(ctx context.Context) models.Categories {
	results := make([][]models.MovieSummary, len(constants.HomeCategories))

	var wg sync.WaitGroup
	for i, category := range constants.HomeCategories {
		wg.Add(1)
		go func(index int, category constants.Category) {
			defer wg.Done()

			movies, err := a.catalog.Category(ctx, category)
			if err != nil {
				a.logger.Errorf("[Aggregator] failed to fetch %s: %v", category, err)
				return
			}
			results[index] = movies
		}(i, category)
	}
	wg.Wait()

	var cats models.Categories
	for i, category := range constants.HomeCategories {
		movies := results[i]
		if movies == nil {
			movies = []models.MovieSummary{}
		}
		switch category {
		case constants.CategoryNowPlaying:
			cats.NowPlaying = movies
		case constants.CategoryPopular:
			cats.Popular = movies
		case constants.CategoryUpcoming:
			cats.Upcoming = movies
		case constants.CategoryTopRated:
			cats.TopRated = movies
		}
	}

	a.logger.Debugf("[Aggregator] loaded %d/%d/%d/%d movies",
		len(cats.NowPlaying), len(cats.Popular), len(cats.Upcoming), len(cats.TopRated))
	return cats
}

// WorkingSet concatenates the categories in merge order. Duplicates are
// kept.
func WorkingSet(cats models.Categories) []models.MovieSummary {
	out := make([]models.MovieSummary, 0,
		len(cats.NowPlaying)+len(cats.Popular)+len(cats.Upcoming)+len(cats.TopRated))
	out = append(out, cats.NowPlaying...)
	out = append(out, cats.Popular...)
	out = append(out, cats.Upcoming...)
	out = append(out, cats.TopRated...)
	return out
}
