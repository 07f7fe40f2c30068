package services

import (
	"context"
	"testing"
	"time"

	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/internal/state"
	"github.com/amaumene/cinefinder/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmptyQuerySkipsRequest(t *testing.T) {
	catalog := &fakeCatalog{}
	flow := NewSearchFlow(catalog, logger.Discard())
	sugg := state.NewSuggestions()

	flow.Suggest(context.Background(), sugg, "alien")
	require.Len(t, sugg.Current(), 1)

	res := flow.Suggest(context.Background(), sugg, "   ")
	assert.Empty(t, res.Keywords)
	assert.Empty(t, sugg.Current())
	assert.EqualValues(t, 1, catalog.keywordCalls.Load())
}

func TestSuggestEveryCallIssuesRequest(t *testing.T) {
	catalog := &fakeCatalog{}
	flow := NewSearchFlow(catalog, logger.Discard())
	sugg := state.NewSuggestions()

	for _, q := range []string{"a", "al", "ali"} {
		res := flow.Suggest(context.Background(), sugg, q)
		assert.False(t, res.Stale)
	}
	assert.EqualValues(t, 3, catalog.keywordCalls.Load())
	assert.Equal(t, "ali", sugg.Current()[0].Name)
}

func TestSuggestLatestRequestWins(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	catalog := &fakeCatalog{
		keywordsFn: func(_ context.Context, query string) ([]models.Keyword, error) {
			if query == "slow" {
				close(entered)
				<-release
			}
			return []models.Keyword{{ID: len(query), Name: query}}, nil
		},
	}
	flow := NewSearchFlow(catalog, logger.Discard())
	sugg := state.NewSuggestions()

	done := make(chan models.SuggestResult, 1)
	go func() {
		done <- flow.Suggest(context.Background(), sugg, "slow")
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("slow request never started")
	}

	fast := flow.Suggest(context.Background(), sugg, "fast")
	assert.False(t, fast.Stale)
	close(release)

	slow := <-done
	assert.True(t, slow.Stale)
	assert.Less(t, slow.Seq, fast.Seq)
	require.Len(t, sugg.Current(), 1)
	assert.Equal(t, "fast", sugg.Current()[0].Name)
}

func TestCommitReplacesSearchResults(t *testing.T) {
	catalog := &fakeCatalog{}
	flow := NewSearchFlow(catalog, logger.Discard())
	sugg := state.NewSuggestions()
	filter := state.NewFilterState()

	flow.Suggest(context.Background(), sugg, "matrix")
	results, applied := flow.Commit(context.Background(), sugg, filter, "matrix")
	require.True(t, applied)
	assert.Equal(t, []int{99}, ids(results))
	assert.Equal(t, []int{99}, ids(filter.Snapshot().SearchResults))
	assert.Empty(t, sugg.Current(), "commit clears suggestions")
}

func TestCommitFailureClearsOverride(t *testing.T) {
	catalog := &fakeCatalog{
		moviesFn: func(context.Context, string) ([]models.MovieSummary, error) {
			return nil, errFake
		},
	}
	flow := NewSearchFlow(catalog, logger.Discard())
	filter := state.NewFilterState()
	filter.SetSearchResults([]models.MovieSummary{{ID: 1}})

	results, applied := flow.Commit(context.Background(), state.NewSuggestions(), filter, "x")
	assert.True(t, applied)
	assert.Empty(t, results)
	assert.Empty(t, filter.Snapshot().SearchResults)
}

func TestCommitEmptyQuery(t *testing.T) {
	catalog := &fakeCatalog{}
	flow := NewSearchFlow(catalog, logger.Discard())
	filter := state.NewFilterState()
	filter.SetSearchResults([]models.MovieSummary{{ID: 1}})

	_, applied := flow.Commit(context.Background(), state.NewSuggestions(), filter, "")
	assert.True(t, applied)
	assert.Empty(t, filter.Snapshot().SearchResults)
	assert.Zero(t, catalog.movieCalls.Load())
}

func TestSupersededCommitIsDropped(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	catalog := &fakeCatalog{
		moviesFn: func(_ context.Context, query string) ([]models.MovieSummary, error) {
			if query == "slow" {
				close(entered)
				<-release
				return []models.MovieSummary{{ID: 1}}, nil
			}
			return []models.MovieSummary{{ID: 2}}, nil
		},
	}
	flow := NewSearchFlow(catalog, logger.Discard())
	sugg := state.NewSuggestions()
	filter := state.NewFilterState()

	done := make(chan bool, 1)
	go func() {
		_, applied := flow.Commit(context.Background(), sugg, filter, "slow")
		done <- applied
	}()
	<-entered

	_, applied := flow.Commit(context.Background(), sugg, filter, "fast")
	require.True(t, applied)
	close(release)

	assert.False(t, <-done)
	assert.Equal(t, []int{2}, ids(filter.Snapshot().SearchResults))
}
