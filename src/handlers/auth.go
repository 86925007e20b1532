package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tmcybertech/portal-api/src/middleware"
	"github.com/tmcybertech/portal-api/src/services"
)

// AuthHandler serves the login endpoint
type AuthHandler struct {
	tokenTTL time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{tokenTTL: tokenTTL}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues a bearer token
func (ah *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	admin, err := services.Authenticate(c.Request.Context(), middleware.Conn(c), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("login lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := middleware.GenerateToken(admin.ID, admin.Email, ah.tokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
