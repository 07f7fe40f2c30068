package services

import (
	"github.com/amaumene/cinefinder/internal/models"
)

// Display derives the home view from the loaded categories and the filter.
// Non-empty search results win over the genre filter. A genre filter that
// matches nothing falls back to the category lists, as does no filter.
func Display(cats models.Categories, filter models.FilterSnapshot) models.HomeView {
	view := models.HomeView{
		Mode:          models.DisplayCategories,
		SelectedGenre: filter.SelectedGenre,
		Movies:        []models.MovieSummary{},
		Categories:    cats,
	}
	if len(cats.Popular) > 0 {
		hero := cats.Popular[0]
		view.Hero = &hero
	}

	switch {
	case len(filter.SearchResults) > 0:
		view.Mode = models.DisplaySearch
		view.Movies = filter.SearchResults
	case filter.SelectedGenre != nil:
		if filtered := FilterByGenre(WorkingSet(cats), filter.SelectedGenre.ID); len(filtered) > 0 {
			view.Mode = models.DisplayGenre
			view.Movies = filtered
		}
	}
	return view
}

// FilterByGenre keeps movies whose genre ids contain genreID, preserving
// order. Movies without genre ids never match.
func FilterByGenre(movies []models.MovieSummary, genreID int) []models.MovieSummary {
	out := make([]models.MovieSummary, 0)
	for _, m := range movies {
		if len(m.GenreIDs) == 0 {
			continue
		}
		if m.HasGenre(genreID) {
			out = append(out, m)
		}
	}
	return out
}
