// Package services provides the remote catalog client and the logic built
// on it: home aggregation, display derivation, keyword search and the
// detail page.
package services

import (
	"github.com/amaumene/cinefinder/internal/cache"
	"github.com/amaumene/cinefinder/internal/database"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/internal/state"
	"github.com/amaumene/cinefinder/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Catalog    Catalog
	Aggregator *Aggregator
	Search     *SearchFlow
	Detail     *DetailService
	Favorites  *state.Favorites
	Sessions   *state.Sessions
	Store      database.BlobStore
	GenreCache *cache.LRUCache[[]models.Genre]
	Logger     logger.Logger
}

// NewContainer builds the catalog driven services around catalog.
func NewContainer(catalog Catalog, favorites *state.Favorites, sessions *state.Sessions, log logger.Logger) *Container {
	return &Container{
		Catalog:    catalog,
		Aggregator: NewAggregator(catalog, log),
		Search:     NewSearchFlow(catalog, log),
		Detail:     NewDetailService(catalog, log),
		Favorites:  favorites,
		Sessions:   sessions,
		Logger:     log,
	}
}
