package services

import (
	"context"
	"testing"

	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailServiceGet(t *testing.T) {
	catalog := &fakeCatalog{
		detail: &models.MovieDetail{
			ID:          603,
			Title:       "The Matrix",
			VoteAverage: 8.25,
			Runtime:     136,
			ReleaseDate: "1999-03-30",
		},
		videos: []models.MovieVideo{
			{Key: "teaser", Site: "YouTube", Type: "Teaser"},
			{Key: "vimeo", Site: "Vimeo", Type: "Trailer"},
			{Key: "first", Site: "YouTube", Type: "Trailer"},
			{Key: "second", Site: "YouTube", Type: "Trailer"},
		},
		recs: summaries(1, 2, 3, 4, 5, 6, 7, 8),
	}

	view, err := NewDetailService(catalog, logger.Discard()).Get(context.Background(), 603)
	require.NoError(t, err)

	assert.Equal(t, "The Matrix", view.Movie.Title)
	require.NotNil(t, view.Trailer)
	assert.Equal(t, "first", view.Trailer.Key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(view.Recommendations))
	assert.Equal(t, 83, view.RatingPercent)
	assert.Equal(t, "2h 16min", view.RuntimeLabel)
	assert.Equal(t, "March 30, 1999", view.ReleaseLabel)
	assert.Equal(t, 1999, view.ReleaseYear)
}

func TestDetailServiceAuxiliaryFailures(t *testing.T) {
	catalog := &fakeCatalog{
		detail:    &models.MovieDetail{ID: 1, Title: "x"},
		videosErr: errFake,
		recsErr:   errFake,
	}

	view, err := NewDetailService(catalog, logger.Discard()).Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, view.Trailer)
	assert.NotNil(t, view.Recommendations)
	assert.Empty(t, view.Recommendations)
	assert.Empty(t, view.ReleaseLabel)
}

func TestDetailServiceMovieFailure(t *testing.T) {
	catalog := &fakeCatalog{detailErr: errFake}
	view, err := NewDetailService(catalog, logger.Discard()).Get(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, view)
}

func TestDetailLabels(t *testing.T) {
	assert.Equal(t, 0, RatingPercent(0))
	assert.Equal(t, 100, RatingPercent(10))
	assert.Equal(t, 75, RatingPercent(7.46))

	assert.Equal(t, "0h 45min", RuntimeLabel(45))
	assert.Equal(t, "2h 0min", RuntimeLabel(120))
	assert.Equal(t, "", RuntimeLabel(0))

	label, year := ReleaseLabel("2024-12-05")
	assert.Equal(t, "December 5, 2024", label)
	assert.Equal(t, 2024, year)
	label, year = ReleaseLabel("")
	assert.Empty(t, label)
	assert.Zero(t, year)
}

func TestPickTrailerNone(t *testing.T) {
	assert.Nil(t, PickTrailer(nil))
	assert.Nil(t, PickTrailer([]models.MovieVideo{{Site: "YouTube", Type: "Clip"}}))
}
