package handlers

import (
	"net/http"
	"strconv"

	apperrors "github.com/amaumene/cinefinder/internal/errors"
	"github.com/amaumene/cinefinder/internal/middleware"
	"github.com/amaumene/cinefinder/internal/state"
	"github.com/gin-gonic/gin"
)

// session returns the request's session or aborts with 500 when the
// session middleware did not run.
func session(c *gin.Context) (*state.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
		return nil, false
	}
	return sess, true
}

// parseMovieID reads a positive integer path parameter.
func parseMovieID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidIDError(raw)
	}
	return id, nil
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
