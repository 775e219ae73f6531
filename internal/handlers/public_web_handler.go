package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapmarket/snapmarket-api/internal/middleware"
)

// PublicWebHandler serves the pages a visitor can reach without a
// session: the landing page and the sign-in/sign-up page.
type PublicWebHandler struct {
	auth *AuthHandler
}

func NewPublicWebHandler(auth *AuthHandler) *PublicWebHandler {
	return &PublicWebHandler{auth: auth}
}

func (h *PublicWebHandler) Landing(c *gin.Context) {
	_, signedIn := currentWebSession(c, h.auth)

	c.HTML(http.StatusOK, "landing.html", gin.H{
		"SignedIn": signedIn,
	})
}

func (h *PublicWebHandler) AuthPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", gin.H{
		"Error": c.Query("error"),
	})
}

func (h *PublicWebHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	profile, err := h.auth.authenticate(email, password)
	if err != nil {
		c.Redirect(http.StatusFound, middleware.SignInPath+"?error=invalid_credentials")
		return
	}

	if err := setSessionCookie(c, h.auth, profile); err != nil {
		c.Redirect(http.StatusFound, middleware.SignInPath+"?error=internal")
		return
	}

	c.Redirect(http.StatusFound, "/web/dashboard")
}

func (h *PublicWebHandler) Register(c *gin.Context) {
	req := RegisterRequest{
		FullName: c.PostForm("full_name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     c.PostForm("role"),
	}

	if req.FullName == "" || req.Email == "" || len(req.Password) < 6 ||
		(req.Role != "client" && req.Role != "photographer") {
		c.Redirect(http.StatusFound, middleware.SignInPath+"?error=invalid_request")
		return
	}

	profile, err := h.auth.createProfile(req)
	if err != nil {
		c.Redirect(http.StatusFound, middleware.SignInPath+"?error=registration_failed")
		return
	}

	if err := setSessionCookie(c, h.auth, profile); err != nil {
		c.Redirect(http.StatusFound, middleware.SignInPath+"?error=internal")
		return
	}

	c.Redirect(http.StatusFound, "/web/dashboard")
}
