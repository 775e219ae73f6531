package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/snapmarket/snapmarket-api/internal/httperr"
)

// RequireRole aborts with 403 unless the authenticated user's role is
// one of the allowed set. Must run after AuthMiddleware or
// RequireWebSession.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, ok := c.Get(ContextUserRole)
		if !ok || !allowed[role.(string)] {
			httperr.Forbidden(c, "forbidden", "You do not have permission to perform this action.")
			c.Abort()
			return
		}
		c.Next()
	}
}
