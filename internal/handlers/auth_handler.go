package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/snapmarket/snapmarket-api/internal/audit"
	"github.com/snapmarket/snapmarket-api/internal/config"
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/middleware"
	"github.com/snapmarket/snapmarket-api/internal/models"
	"github.com/snapmarket/snapmarket-api/internal/session"
	"github.com/snapmarket/snapmarket-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions *session.Store
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	sessions *session.Store,
	dispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:       db,
		config:   cfg,
		sessions: sessions,
		audit:    dispatcher,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required,oneof=client photographer"`
	AvatarURL string `json:"avatar_url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.createProfile(req)
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			c.JSON(http.StatusBadRequest, gin.H{"error": be.Code})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  profileJSON(profile),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  profileJSON(profile),
		"token": token,
	})
}

// SignOut revokes the presented token for the rest of its lifetime.
func (h *AuthHandler) SignOut(c *gin.Context) {
	tokenID, _ := c.MustGet(middleware.ContextTokenID).(string)
	expiry, _ := c.MustGet(middleware.ContextTokenExpiry).(time.Time)

	if err := h.sessions.Revoke(c.Request.Context(), tokenID, time.Until(expiry)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_sign_out"})
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Core (shared with the web pages) ---------

func (h *AuthHandler) createProfile(req RegisterRequest) (*models.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, httperr.ErrBusiness("email_already_registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := models.Profile{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		AvatarURL:    req.AvatarURL,
		Role:         req.Role,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		return nil, err
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &profile.ID,
		Action:   "user_registered",
		Entity:   "profile",
		EntityID: &profile.ID,
	})

	return &profile, nil
}

func (h *AuthHandler) authenticate(email, password string) (*models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return &profile, nil
}

func profileJSON(p *models.Profile) gin.H {
	return gin.H{
		"id":         p.ID,
		"full_name":  p.FullName,
		"email":      p.Email,
		"avatar_url": p.AvatarURL,
		"role":       p.Role,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ID,
		"role": profile.Role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
