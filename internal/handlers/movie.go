package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const detailErrorMessage = "Error loading movie details"

func (h *Handler) handleMovie(c *gin.Context) {
	id, err := parseMovieID(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	view, err := h.services.Detail.Get(c.Request.Context(), id)
	if err != nil {
		h.services.Logger.Errorf("[Handlers] failed to load movie %d: %v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"error": detailErrorMessage})
		return
	}

	view.IsFavorite = h.services.Favorites.IsFavorite(id)
	c.JSON(http.StatusOK, view)
}
