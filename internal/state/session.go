package state

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/pkg/logger"
	"github.com/google/uuid"
)

// Session is the in-memory state of one browser tab. Filter, login and
// suggestions are per session and reset when it expires. Favorites are
// shared by every session.
type Session struct {
	ID          string
	Filter      *FilterState
	Auth        *AuthGate
	Suggestions *Suggestions
	Favorites   *Favorites

	lastSeen atomic.Int64
}

// FavoriteOutcome is the result of a gated favorite toggle.
type FavoriteOutcome struct {
	LoginRequired bool `json:"login_required"`
	IsFavorite    bool `json:"is_favorite"`
}

// ToggleFavorite toggles movie when the session is logged in. Otherwise
// the favorites list is untouched and the login prompt is toggled instead.
func (s *Session) ToggleFavorite(ctx context.Context, movie models.MovieSummary) (FavoriteOutcome, error) {
	if !s.Auth.IsAuthenticated() {
		s.Auth.ToggleLoginModal()
		return FavoriteOutcome{
			LoginRequired: true,
			IsFavorite:    s.Favorites.IsFavorite(movie.ID),
		}, nil
	}

	fav, err := s.Favorites.Toggle(ctx, movie)
	return FavoriteOutcome{IsFavorite: fav}, err
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// Sessions is the registry of live sessions keyed by id.
type Sessions struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	favorites *Favorites
	idleTTL   time.Duration
	logger    logger.Logger
	now       func() time.Time
}

func NewSessions(favorites *Favorites, idleTTL time.Duration, log logger.Logger) *Sessions {
	return &Sessions{
		sessions:  make(map[string]*Session),
		favorites: favorites,
		idleTTL:   idleTTL,
		logger:    log,
		now:       time.Now,
	}
}

// GetOrCreate returns the session for id, or a fresh one with a new id when
// id is empty or unknown. created reports which happened.
func (s *Sessions) GetOrCreate(id string) (sess *Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if id != "" {
		if existing, ok := s.sessions[id]; ok {
			existing.touch(now)
			return existing, false
		}
	}

	sess = &Session{
		ID:          uuid.NewString(),
		Filter:      NewFilterState(),
		Auth:        NewAuthGate(),
		Suggestions: NewSuggestions(),
		Favorites:   s.favorites,
	}
	sess.touch(now)
	s.sessions[sess.ID] = sess
	return sess, true
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTTL).UnixNano()
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Load() < cutoff {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is done.
func (s *Sessions) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					s.logger.Debugf("[Sessions] expired %d idle sessions", n)
				}
			}
		}
	}()
}
