package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapmarket/snapmarket-api/internal/config"
	"github.com/snapmarket/snapmarket-api/internal/session"
)

// SessionCookie carries the session token for server-rendered pages.
const SessionCookie = "sm_session"

// SignInPath is where unauthenticated page visits are redirected.
const SignInPath = "/web/auth"

// RequireWebSession guards page routes. Visitors without a valid
// session are redirected to the sign-in page before any data access;
// a failed session check is treated the same as no session.
func RequireWebSession(cfg *config.Config, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
			return
		}

		claims, err := ParseToken(cfg, tokenString)
		if err != nil || sessions.IsRevoked(c.Request.Context(), claims.TokenID) {
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextTokenID, claims.TokenID)
		c.Set(ContextTokenExpiry, claims.Expiry)

		c.Next()
	}
}
