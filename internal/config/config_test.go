package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/cinefinder/internal/constants"
	apperrors "github.com/amaumene/cinefinder/internal/errors"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TMDB_TOKEN", "TMDB_API_KEY", "TMDB_BASE_URL", "TMDB_LANGUAGE", "TMDB_DETAIL_LANGUAGE",
		"PORT", "STORE_BACKEND", "DATABASE_PATH", "REDIS_URL", "LOG_LEVEL", "LOG_FORMAT",
		"HTTP_TIMEOUT_SECONDS", "CACHE_SIZE", "CACHE_TTL_HOURS",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))
}

func TestLoadRequiresCredentials(t *testing.T) {
	isolate(t)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfigurationInvalid))

	t.Setenv("TMDB_TOKEN", "token-value")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("TMDB_TOKEN", "token-value")
	t.Setenv("TMDB_API_KEY", "key-value")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultTMDBBaseURL, cfg.TMDBBaseURL)
	assert.Equal(t, "en-US", cfg.TMDBLanguage)
	assert.Equal(t, "es-ES", cfg.TMDBDetailLanguage)
	assert.Equal(t, constants.StoreBackendBolt, cfg.StoreBackend)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, 24*time.Hour, cfg.CacheTTLDuration())
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"TMDB_TOKEN": "file-token",
		"TMDB_API_KEY": "file-key",
		"PORT": "7000",
		"CACHE_SIZE": 5
	}`), 0o600))
	t.Setenv("CONFIG_FILE", file)
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.TMDBToken)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5, cfg.CacheSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("TMDB_TOKEN", "token-value")
	t.Setenv("TMDB_API_KEY", "key-value")

	t.Setenv("CACHE_SIZE", "lots")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_SIZE")

	t.Setenv("CACHE_SIZE", "")
	t.Setenv("STORE_BACKEND", "etcd")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("STORE_BACKEND", "redis")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_URL")

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{not json`), 0o600))
	t.Setenv("CONFIG_FILE", file)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestLoadReportsFirstMalformedIntInOrder(t *testing.T) {
	isolate(t)
	t.Setenv("TMDB_TOKEN", "token-value")
	t.Setenv("TMDB_API_KEY", "key-value")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")
	t.Setenv("CACHE_SIZE", "lots")
	t.Setenv("CACHE_TTL_HOURS", "forever")

	for i := 0; i < 20; i++ {
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_TIMEOUT_SECONDS")
		assert.NotContains(t, err.Error(), "CACHE_")
	}
}
