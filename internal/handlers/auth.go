package handlers

import (
	"net/http"

	"github.com/amaumene/cinefinder/internal/models"
	"github.com/gin-gonic/gin"
)

const invalidCredentialsAlert = "invalid credentials"

func (h *Handler) handleAuthState(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Auth.State())
}

// handleLogin answers a mismatch with 401 and an alert for the client to
// show; session state is left unchanged in that case.
func (h *Handler) handleLogin(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if err := sess.Auth.Login(creds); err != nil {
		h.services.Logger.Infof("[Handlers] rejected login for session %s", sess.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"alert": invalidCredentialsAlert})
		return
	}
	c.JSON(http.StatusOK, sess.Auth.State())
}

func (h *Handler) handleLogout(c *gin.Context) {
	h.withAuth(c, func(s authMutator) { s.Logout() })
}

func (h *Handler) handleToggleModal(c *gin.Context) {
	h.withAuth(c, func(s authMutator) { s.ToggleLoginModal() })
}

func (h *Handler) handleOpenModal(c *gin.Context) {
	h.withAuth(c, func(s authMutator) { s.OpenModal() })
}

func (h *Handler) handleCloseModal(c *gin.Context) {
	h.withAuth(c, func(s authMutator) { s.CloseModal() })
}

type authMutator interface {
	Logout()
	ToggleLoginModal()
	OpenModal()
	CloseModal()
}

func (h *Handler) withAuth(c *gin.Context, mutate func(authMutator)) {
	sess, ok := session(c)
	if !ok {
		return
	}
	mutate(sess.Auth)
	c.JSON(http.StatusOK, sess.Auth.State())
}
