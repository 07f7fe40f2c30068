package handlers

import (
	"net/http"

	"github.com/amaumene/cinefinder/internal/models"
	"github.com/gin-gonic/gin"
)

type setGenreRequest struct {
	ID *int `json:"id"`
}

type searchResultsRequest struct {
	Results []models.MovieSummary `json:"results"`
}

type commitSearchRequest struct {
	Query string `json:"query"`
}

func (h *Handler) handleGetFilter(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Filter.Snapshot())
}

// handleSetGenre selects a genre by id; a null or zero id selects all
// genres. The name is taken from the reference set when it is available.
func (h *Handler) handleSetGenre(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	var req setGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if req.ID == nil || *req.ID == 0 {
		sess.Filter.SetGenre(nil)
		c.JSON(http.StatusOK, sess.Filter.Snapshot())
		return
	}

	genre := models.Genre{ID: *req.ID}
	if genres, err := h.services.Catalog.Genres(c.Request.Context()); err == nil {
		for _, g := range genres {
			if g.ID == genre.ID {
				genre = g
				break
			}
		}
	} else {
		h.services.Logger.Warnf("[Handlers] genre lookup unavailable: %v", err)
	}

	sess.Filter.SetGenre(&genre)
	c.JSON(http.StatusOK, sess.Filter.Snapshot())
}

func (h *Handler) handleSetSearchResults(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	var req searchResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	results, dropped := models.ValidMovies(req.Results)
	if dropped > 0 {
		h.services.Logger.Warnf("[Handlers] dropped %d invalid movies from search results", dropped)
	}

	sess.Filter.SetSearchResults(results)
	c.JSON(http.StatusOK, sess.Filter.Snapshot())
}

func (h *Handler) handleClearSearchResults(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	sess.Filter.SetSearchResults(nil)
	c.JSON(http.StatusOK, sess.Filter.Snapshot())
}

func (h *Handler) handleSuggest(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	result := h.services.Search.Suggest(c.Request.Context(), sess.Suggestions, c.Query("query"))
	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleCommitSearch(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	var req commitSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	results, applied := h.services.Search.Commit(c.Request.Context(), sess.Suggestions, sess.Filter, req.Query)
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"applied": applied,
	})
}
