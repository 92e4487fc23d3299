package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "access_token"

// UsernameKey is the gin context key holding the authenticated identity.
const UsernameKey = "username"

// RequireAdmin gates admin routes. A missing or invalid cookie redirects to
// the login page instead of answering 401; this mirrors the site's UX where
// every unauthenticated admin hit lands on the login form.
func RequireAdmin(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
			c.Abort()
			return
		}

		username, err := tm.Validate(token)
		if err != nil {
			c.Redirect(http.StatusTemporaryRedirect, "/logout")
			c.Abort()
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
