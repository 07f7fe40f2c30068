package handlers

import (
	"net/http"

	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/internal/services"
	"github.com/gin-gonic/gin"
)

// handleHome responds only once all four category fetches have settled.
func (h *Handler) handleHome(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	cats := h.services.Aggregator.Load(c.Request.Context())
	c.JSON(http.StatusOK, services.Display(cats, sess.Filter.Snapshot()))
}

// handleGenres lists the genre reference set. A failed fetch yields an
// empty list.
func (h *Handler) handleGenres(c *gin.Context) {
	genres, err := h.services.Catalog.Genres(c.Request.Context())
	if err != nil {
		h.services.Logger.Errorf("[Handlers] failed to fetch genres: %v", err)
		genres = []models.Genre{}
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}
