package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/pkg/logger"
)

// DetailService assembles the movie detail page.
type DetailService struct {
	catalog Catalog
	logger  logger.Logger
}

func NewDetailService(catalog Catalog, log logger.Logger) *DetailService {
	return &DetailService{catalog: catalog, logger: log}
}

// Get fetches the movie, then its videos and recommendations in parallel.
// Only the movie fetch is fatal; the auxiliary lookups degrade to no
// trailer and no recommendations. isFavorite is filled by the caller.
func (d *DetailService) Get(ctx context.Context, id int) (*models.DetailView, error) {
	movie, err := d.catalog.MovieDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		videos []models.MovieVideo
		recs   []models.MovieSummary
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		v, err := d.catalog.MovieVideos(ctx, id)
		if err != nil {
			d.logger.Errorf("[Detail] failed to fetch videos for %d: %v", id, err)
			return
		}
		videos = v
	}()
	go func() {
		defer wg.Done()
		r, err := d.catalog.Recommendations(ctx, id)
		if err != nil {
			d.logger.Errorf("[Detail] failed to fetch recommendations for %d: %v", id, err)
			return
		}
		recs = r
	}()
	wg.Wait()

	if len(recs) > constants.MaxRecommendations {
		recs = recs[:constants.MaxRecommendations]
	}
	if recs == nil {
		recs = []models.MovieSummary{}
	}

	release, year := ReleaseLabel(movie.ReleaseDate)
	return &models.DetailView{
		Movie:           *movie,
		Trailer:         PickTrailer(videos),
		Recommendations: recs,
		RatingPercent:   RatingPercent(movie.VoteAverage),
		RuntimeLabel:    RuntimeLabel(movie.Runtime),
		ReleaseLabel:    release,
		ReleaseYear:     year,
	}, nil
}

// PickTrailer returns the first YouTube trailer, or nil.
func PickTrailer(videos []models.MovieVideo) *models.MovieVideo {
	for _, v := range videos {
		if v.Type == constants.TrailerType && v.Site == constants.TrailerSite {
			video := v
			return &video
		}
	}
	return nil
}

// RatingPercent maps a 0..10 vote average onto 0..100.
func RatingPercent(vote float64) int {
	return int(math.Round(vote * 10))
}

// RuntimeLabel formats minutes as "2h 5min".
func RuntimeLabel(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

// ReleaseLabel formats an ISO date as "January 2, 2006" and returns its
// year. Unparseable dates give "" and 0.
func ReleaseLabel(date string) (string, int) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", 0
	}
	return t.Format("January 2, 2006"), t.Year()
}
