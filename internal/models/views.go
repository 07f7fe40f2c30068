package models

// DisplayMode says which rule produced the displayed list.
type DisplayMode string

const (
	DisplaySearch     DisplayMode = "search"
	DisplayGenre      DisplayMode = "genre"
	DisplayCategories DisplayMode = "categories"
)

// Categories holds the four home page lists, page 1 each.
type Categories struct {
	NowPlaying []MovieSummary `json:"now_playing"`
	Popular    []MovieSummary `json:"popular"`
	Upcoming   []MovieSummary `json:"upcoming"`
	TopRated   []MovieSummary `json:"top_rated"`
}

type HomeView struct {
	Hero          *MovieSummary  `json:"hero,omitempty"`
	Mode          DisplayMode    `json:"mode"`
	SelectedGenre *Genre         `json:"selected_genre,omitempty"`
	Movies        []MovieSummary `json:"movies"`
	Categories    Categories     `json:"categories"`
}

type DetailView struct {
	Movie           MovieDetail    `json:"movie"`
	Trailer         *MovieVideo    `json:"trailer,omitempty"`
	Recommendations []MovieSummary `json:"recommendations"`
	RatingPercent   int            `json:"rating_percent"`
	RuntimeLabel    string         `json:"runtime_label"`
	ReleaseLabel    string         `json:"release_label"`
	ReleaseYear     int            `json:"release_year,omitempty"`
	IsFavorite      bool           `json:"is_favorite"`
}

type AuthState struct {
	IsAuthenticated      bool `json:"is_authenticated"`
	IsLoginPromptVisible bool `json:"is_login_prompt_visible"`
}

type FilterSnapshot struct {
	SelectedGenre *Genre         `json:"selected_genre"`
	SearchResults []MovieSummary `json:"search_results"`
}

type SuggestResult struct {
	Seq      uint64    `json:"seq"`
	Stale    bool      `json:"stale"`
	Keywords []Keyword `json:"keywords"`
}

type FavoritesRecord struct {
	Favorites []MovieSummary `json:"favorites"`
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
