package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "admin_session"

// SetSessionCookie attaches the session token: HTTP-only, SameSite=Lax,
// site-wide, 24h; Secure outside local development.
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(TokenTTL.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie instructs the client to discard the session.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
