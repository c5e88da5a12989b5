// Package middleware holds the route guard protecting the admin area
// and the locale redirect for public pages.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/auth"
)

// ContextKeyUser is where the guard stores the verified username.
const ContextKeyUser = "admin_user"

// LoginPath is where browser navigations are sent on auth failure.
const LoginPath = "/admin/login"

// RequireAdmin guards admin routes. Missing or invalid cookies get a
// 401 on API paths and a redirect to the login page elsewhere; an
// invalid cookie is additionally cleared.
func RequireAdmin(verifier auth.Verifier, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			deny(c)
			return
		}

		username, err := verifier.Verify(token)
		if err != nil {
			auth.ClearSessionCookie(c, secure)
			deny(c)
			return
		}

		c.Set(ContextKeyUser, username)
		c.Next()
	}
}

func deny(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Nepřihlášený uživatel"})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, LoginPath)
	c.Abort()
}
