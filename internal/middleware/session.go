package middleware

import (
	"net/http"

	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/state"
	"github.com/gin-gonic/gin"
)

const sessionContextKey = "cinefinder.session"

// Session resolves the caller's session from the X-Session-ID header or the
// session cookie, creating one when neither names a live session. The id is
// echoed back in both.
func Session(sessions *state.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(constants.SessionCookie); err == nil {
				id = cookie
			}
		}

		sess, _ := sessions.GetOrCreate(id)

		c.Header(constants.SessionHeader, sess.ID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(constants.SessionCookie, sess.ID, int(constants.SessionIdleTTL.Seconds()), "/", "", false, true)
		c.Set(sessionContextKey, sess)

		c.Next()
	}
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *gin.Context) (*state.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*state.Session)
	return sess, ok
}
