package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/cinefinder/internal/cache"
	"github.com/amaumene/cinefinder/internal/constants"
	apperrors "github.com/amaumene/cinefinder/internal/errors"
	"github.com/amaumene/cinefinder/internal/metrics"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/pkg/httputil"
	"github.com/amaumene/cinefinder/pkg/logger"
	"github.com/amaumene/cinefinder/pkg/ratelimiter"
	"github.com/amaumene/cinefinder/pkg/security"
)

const genresCacheKey = "tmdb:genres"

// TMDBOptions configures a TMDB client.
type TMDBOptions struct {
	BaseURL        string
	Token          string
	APIKey         string
	Language       string
	DetailLanguage string
	HTTPClient     *http.Client
	RateLimiter    ratelimiter.RateLimiter
	GenreCache     *cache.LRUCache[[]models.Genre]
	Logger         logger.Logger
}

// TMDB is the remote catalog client. Every request carries the bearer token
// header and the api_key query parameter.
type TMDB struct {
	baseURL        string
	token          string
	apiKey         string
	language       string
	detailLanguage string
	httpClient     *http.Client
	rateLimiter    ratelimiter.RateLimiter
	genres         *cache.LRUCache[[]models.Genre]
	logger         logger.Logger
	validator      *security.SecretValidator
}

func NewTMDB(opts TMDBOptions) *TMDB {
	validator := security.NewSecretValidator()

	t := &TMDB{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		token:          validator.SanitizeToken(opts.Token),
		apiKey:         validator.SanitizeAPIKey(opts.APIKey),
		language:       opts.Language,
		detailLanguage: opts.DetailLanguage,
		httpClient:     opts.HTTPClient,
		rateLimiter:    opts.RateLimiter,
		genres:         opts.GenreCache,
		logger:         opts.Logger,
		validator:      validator,
	}
	if t.baseURL == "" {
		t.baseURL = constants.DefaultTMDBBaseURL
	}
	if t.language == "" {
		t.language = constants.DefaultLanguage
	}
	if t.detailLanguage == "" {
		t.detailLanguage = constants.DefaultDetailLanguage
	}
	if t.httpClient == nil {
		t.httpClient = httputil.NewDefaultHTTPClient()
	}
	if t.rateLimiter == nil {
		t.rateLimiter = ratelimiter.NewTokenBucket(constants.TMDBRateBurst, constants.TMDBRateLimit)
	}
	if t.genres == nil {
		t.genres = cache.New[[]models.Genre](1, time.Duration(constants.DefaultCacheTTL)*time.Hour)
	}
	if t.logger == nil {
		t.logger = logger.New()
	}

	if t.apiKey != "" && !validator.IsValidTMDBKey(t.apiKey) {
		t.logger.Warnf("[TMDB] api key does not look like a v3 key (key: %s)", validator.Mask(t.apiKey))
	}
	return t
}

// Category fetches page 1 of one of the home page lists.
func (t *TMDB) Category(ctx context.Context, category constants.Category) ([]models.MovieSummary, error) {
	params := url.Values{}
	params.Set("language", t.language)
	params.Set("page", "1")
	return t.fetchList(ctx, "/movie/"+string(category), params)
}

// Recommendations fetches movies recommended for id, page 1.
func (t *TMDB) Recommendations(ctx context.Context, id int) ([]models.MovieSummary, error) {
	params := url.Values{}
	params.Set("language", t.detailLanguage)
	params.Set("page", "1")
	return t.fetchList(ctx, fmt.Sprintf("/movie/%d/recommendations", id), params)
}

func (t *TMDB) MovieDetails(ctx context.Context, id int) (*models.MovieDetail, error) {
	params := url.Values{}
	params.Set("language", t.language)

	var detail models.MovieDetail
	if err := t.getJSON(ctx, fmt.Sprintf("/movie/%d", id), params, &detail); err != nil {
		return nil, err
	}
	if err := models.Validate(detail); err != nil {
		return nil, apperrors.NewCatalogError(fmt.Sprintf("invalid movie %d", id), err)
	}
	return &detail, nil
}

func (t *TMDB) MovieVideos(ctx context.Context, id int) ([]models.MovieVideo, error) {
	params := url.Values{}
	params.Set("language", t.detailLanguage)

	var resp models.VideoResponse
	if err := t.getJSON(ctx, fmt.Sprintf("/movie/%d/videos", id), params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Genres returns the genre reference set. It is fetched once and served
// from cache until the entry expires.
func (t *TMDB) Genres(ctx context.Context) ([]models.Genre, error) {
	if genres, ok := t.genres.Get(genresCacheKey); ok {
		return genres, nil
	}

	params := url.Values{}
	params.Set("language", t.language)

	var resp models.GenreResponse
	if err := t.getJSON(ctx, "/genre/movie/list", params, &resp); err != nil {
		return nil, err
	}

	genres := make([]models.Genre, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		if err := models.Validate(g); err != nil {
			t.logger.Warnf("[TMDB] dropping invalid genre %+v: %v", g, err)
			continue
		}
		genres = append(genres, g)
	}

	t.genres.Set(genresCacheKey, genres)
	t.logger.Debugf("[TMDB] cached %d genres", len(genres))
	return genres, nil
}

func (t *TMDB) SearchKeywords(ctx context.Context, query string) ([]models.Keyword, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp models.KeywordResponse
	if err := t.getJSON(ctx, "/search/keyword", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (t *TMDB) SearchMovies(ctx context.Context, query string) ([]models.MovieSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	return t.fetchList(ctx, "/search/movie", params)
}

func (t *TMDB) fetchList(ctx context.Context, endpoint string, params url.Values) ([]models.MovieSummary, error) {
	var resp models.MovieListResponse
	if err := t.getJSON(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}

	movies, dropped := models.ValidMovies(resp.Results)
	if dropped > 0 {
		t.logger.Warnf("[TMDB] dropped %d invalid movies from %s", dropped, endpoint)
	}
	return movies, nil
}

// getJSON performs one rate limited GET and decodes a 2xx body into out.
// Transport failures and non-2xx statuses both come back as
// NETWORK_OR_STATUS errors.
func (t *TMDB) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) (err error) {
	defer func() { metrics.RecordFetch(metricEndpoint(endpoint), err) }()

	if err := t.rateLimiter.Wait(ctx); err != nil {
		return apperrors.NewCatalogError("rate limiter wait aborted", err)
	}

	params.Set("api_key", t.apiKey)
	reqURL := t.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return apperrors.NewCatalogError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	t.logger.Debugf("[TMDB] GET %s", endpoint)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return apperrors.NewCatalogError(fmt.Sprintf("failed to fetch %s", endpoint), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewStatusError(endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewCatalogError(fmt.Sprintf("failed to decode %s", endpoint), err)
	}
	return nil
}

// metricEndpoint replaces numeric path segments so movie ids do not become
// label values.
func metricEndpoint(endpoint string) string {
	parts := strings.Split(endpoint, "/")
	for i, p := range parts {
		if _, err := strconv.Atoi(p); err == nil && p != "" {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
