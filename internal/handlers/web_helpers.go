package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/snapmarket/snapmarket-api/internal/middleware"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

const sessionCookieMaxAge = 24 * 60 * 60

func setSessionCookie(c *gin.Context, auth *AuthHandler, profile *models.Profile) error {
	token, err := auth.generateToken(profile)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
	return nil
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}

// currentWebSession peeks at the session cookie without enforcing it,
// for pages that render either way.
func currentWebSession(c *gin.Context, auth *AuthHandler) (*middleware.TokenClaims, bool) {
	tokenString, err := c.Cookie(middleware.SessionCookie)
	if err != nil || tokenString == "" {
		return nil, false
	}

	claims, err := middleware.ParseToken(auth.config, tokenString)
	if err != nil || auth.sessions.IsRevoked(c.Request.Context(), claims.TokenID) {
		return nil, false
	}

	return claims, true
}
