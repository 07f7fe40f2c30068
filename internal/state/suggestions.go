package state

import (
	"sync"

	"github.com/amaumene/cinefinder/internal/models"
)

// Suggestions tracks the keyword list under the search box. Each request is
// stamped with a sequence number from Begin and only the most recently
// issued one may publish, so a slow stale response can never overwrite a
// newer one.
type Suggestions struct {
	mu       sync.Mutex
	suggestN uint64
	commitN  uint64
	keywords []models.Keyword
}

func NewSuggestions() *Suggestions {
	return &Suggestions{}
}

// Begin issues a sequence number for a suggestion request.
func (s *Suggestions) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestN++
	return s.suggestN
}

// Apply publishes keywords if seq is still the latest issued. It reports
// whether the result was applied.
func (s *Suggestions) Apply(seq uint64, keywords []models.Keyword) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.suggestN {
		return false
	}
	s.keywords = append([]models.Keyword{}, keywords...)
	return true
}

// Clear drops the keyword list and invalidates any in-flight suggestion.
func (s *Suggestions) Clear() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestN++
	s.keywords = nil
	return s.suggestN
}

// BeginCommit issues a sequence number for a committed search. It also
// advances the suggestion sequence so pending suggestions are discarded.
func (s *Suggestions) BeginCommit() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestN++
	s.commitN++
	s.keywords = nil
	return s.commitN
}

// ApplyCommit runs apply only if seq is still the latest committed search,
// holding the lock so no later commit can interleave. It reports whether
// apply ran.
func (s *Suggestions) ApplyCommit(seq uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.commitN {
		return false
	}
	apply()
	return true
}

func (s *Suggestions) Current() []models.Keyword {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Keyword{}, s.keywords...)
}
