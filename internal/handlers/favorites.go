package handlers

import (
	"net/http"

	"github.com/amaumene/cinefinder/internal/metrics"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) handleListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": h.services.Favorites.List()})
}

func (h *Handler) handleIsFavorite(c *gin.Context) {
	id, err := parseMovieID(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"is_favorite": h.services.Favorites.IsFavorite(id),
	})
}

// handleToggleFavorite toggles the posted movie for logged in sessions.
// Anonymous sessions get the login prompt toggled instead.
func (h *Handler) handleToggleFavorite(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	var movie models.MovieSummary
	if err := c.ShouldBindJSON(&movie); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if err := models.Validate(movie); err != nil {
		badRequest(c, "invalid movie")
		return
	}

	outcome, err := sess.ToggleFavorite(c.Request.Context(), movie)
	if err != nil {
		h.services.Logger.Errorf("[Handlers] failed to toggle favorite %d: %v", movie.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save favorites"})
		return
	}
	metrics.Favorites.Set(float64(h.services.Favorites.Len()))

	c.JSON(http.StatusOK, gin.H{
		"login_required": outcome.LoginRequired,
		"is_favorite":    outcome.IsFavorite,
		"auth":           sess.Auth.State(),
	})
}
