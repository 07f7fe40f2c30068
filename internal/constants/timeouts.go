package constants

import "time"

const (
	// Per-request timeout for TMDB calls
	HTTPTimeout = 10 * time.Second

	// Sessions idle longer than this are dropped
	SessionIdleTTL = 12 * time.Hour

	// How often idle sessions and expired cache entries are swept
	SweepInterval = 1 * time.Hour

	ShutdownTimeout = 10 * time.Second
)
