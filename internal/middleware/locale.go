package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/i18n"
)

// LocaleRedirect sends public paths without a valid locale prefix to
// the same path under the default locale. API and admin paths pass
// through untouched.
func LocaleRedirect() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/admin") {
			c.Next()
			return
		}

		segments := strings.SplitN(path, "/", 3)
		if len(segments) > 1 && i18n.IsValid(segments[1]) {
			c.Next()
			return
		}

		target := "/" + i18n.DefaultLocale
		if path != "/" {
			target += path
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			target += "?" + raw
		}
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}
