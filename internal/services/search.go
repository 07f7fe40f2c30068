package services

import (
	"context"
	"strings"

	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/internal/state"
	"github.com/amaumene/cinefinder/pkg/logger"
)

// SearchFlow drives the sidebar keyword search: suggestions while typing
// and a committed movie search that replaces the active search results.
type SearchFlow struct {
	catalog Catalog
	logger  logger.Logger
}

func NewSearchFlow(catalog Catalog, log logger.Logger) *SearchFlow {
	return &SearchFlow{catalog: catalog, logger: log}
}

// Suggest fetches keyword suggestions for query. Every call issues a
// request; only the latest one to be issued may publish its keywords, and
// older responses come back marked stale. An empty query clears the list
// without a request.
func (s *SearchFlow) Suggest(ctx context.Context, sugg *state.Suggestions, query string) models.SuggestResult {
	if strings.TrimSpace(query) == "" {
		seq := sugg.Clear()
		return models.SuggestResult{Seq: seq, Keywords: []models.Keyword{}}
	}

	seq := sugg.Begin()
	keywords, err := s.catalog.SearchKeywords(ctx, query)
	if err != nil {
		s.logger.Errorf("[Search] keyword lookup failed for %q: %v", query, err)
		keywords = []models.Keyword{}
	}

	if !sugg.Apply(seq, keywords) {
		s.logger.Debugf("[Search] discarding stale suggestions #%d for %q", seq, query)
		return models.SuggestResult{Seq: seq, Stale: true, Keywords: sugg.Current()}
	}
	return models.SuggestResult{Seq: seq, Keywords: keywords}
}

// Commit runs a movie search for query and replaces the session's search
// results with it wholesale, clearing suggestions. A failed search yields
// no results, which clears the override. It reports whether the results
// were applied; a commit superseded by a later one is dropped.
func (s *SearchFlow) Commit(ctx context.Context, sugg *state.Suggestions, filter *state.FilterState, query string) ([]models.MovieSummary, bool) {
	seq := sugg.BeginCommit()

	results := []models.MovieSummary{}
	if strings.TrimSpace(query) != "" {
		movies, err := s.catalog.SearchMovies(ctx, query)
		if err != nil {
			s.logger.Errorf("[Search] movie search failed for %q: %v", query, err)
		} else if movies != nil {
			results = movies
		}
	}

	applied := sugg.ApplyCommit(seq, func() {
		filter.SetSearchResults(results)
	})
	if !applied {
		s.logger.Debugf("[Search] discarding superseded search #%d for %q", seq, query)
	}
	return results, applied
}
