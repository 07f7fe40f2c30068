// Package constants defines application-wide constants and default values.
package constants

const (
	AppName    = "cinefinder"
	AppVersion = "1.0.0"

	// Default configuration values
	DefaultPort           = "5000"
	DefaultLogLevel       = "info"
	DefaultTMDBBaseURL    = "https://api.themoviedb.org/3"
	DefaultLanguage       = "en-US"
	DefaultDetailLanguage = "es-ES"
	DefaultDatabasePath   = "./cinefinder.db"

	// Cache settings (genre reference set)
	DefaultCacheSize = 64
	DefaultCacheTTL  = 24 // hours

	// Rate limiting
	TMDBRateBurst = 40 // bucket capacity
	TMDBRateLimit = 20 // tokens per second

	// Favorites persistence
	FavoritesStorageKey = "favorites-storage"
	StoreBackendBolt    = "bolt"
	StoreBackendRedis   = "redis"

	// Detail page
	MaxRecommendations = 6
	TrailerType        = "Trailer"
	TrailerSite        = "YouTube"

	// Sessions
	SessionHeader = "X-Session-ID"
	SessionCookie = "cf_session"
)

// Placeholder login. Not a security boundary.
const (
	DemoEmail    = "test@gmail.com"
	DemoPassword = "pass"
)

// Category identifies one of the home page catalog lists.
type Category string

const (
	CategoryNowPlaying Category = "now_playing"
	CategoryPopular    Category = "popular"
	CategoryUpcoming   Category = "upcoming"
	CategoryTopRated   Category = "top_rated"
)

// HomeCategories is the fixed merge order of the working set.
var HomeCategories = []Category{
	CategoryNowPlaying,
	CategoryPopular,
	CategoryUpcoming,
	CategoryTopRated,
}
