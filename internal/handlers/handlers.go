// Package handlers implements the JSON API served to the presentation layer.
package handlers

import (
	"net/http"

	"github.com/amaumene/cinefinder/internal/metrics"
	"github.com/amaumene/cinefinder/internal/middleware"
	"github.com/amaumene/cinefinder/internal/services"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the movie discovery API.
type Handler struct {
	services *services.Container
}

// New creates a new Handler with the provided services.
func New(services *services.Container) *Handler {
	return &Handler{services: services}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.handleHealth)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Session(h.services.Sessions))

	api.GET("/home", h.handleHome)
	api.GET("/genres", h.handleGenres)

	api.GET("/filter", h.handleGetFilter)
	api.PUT("/filter/genre", h.handleSetGenre)
	api.PUT("/filter/search", h.handleSetSearchResults)
	api.DELETE("/filter/search", h.handleClearSearchResults)

	api.GET("/search/keywords", h.handleSuggest)
	api.POST("/search", h.handleCommitSearch)

	api.GET("/movie/:id", h.handleMovie)

	api.GET("/favorites", h.handleListFavorites)
	api.GET("/favorites/:id", h.handleIsFavorite)
	api.POST("/favorites/toggle", h.handleToggleFavorite)

	auth := api.Group("/auth")
	auth.GET("", h.handleAuthState)
	auth.POST("/login", h.handleLogin)
	auth.POST("/logout", h.handleLogout)
	auth.POST("/modal/toggle", h.handleToggleModal)
	auth.POST("/modal/open", h.handleOpenModal)
	auth.POST("/modal/close", h.handleCloseModal)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
