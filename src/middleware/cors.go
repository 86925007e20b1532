package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the headers the policy attaches to every response
type CORSConfig struct {
	AllowedOrigin    string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
}

// DefaultCORSConfig returns the policy for the configured frontend origin
func DefaultCORSConfig(origin string) CORSConfig {
	return CORSConfig{
		AllowedOrigin:    origin,
		AllowedMethods:   "GET, POST, PUT, DELETE, OPTIONS",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
}

// CORS attaches the configured headers to every response, success or failure,
// and answers OPTIONS preflights with 200 and an empty body before any
// authentication or business logic runs.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	credentials := "false"
	if cfg.AllowCredentials {
		credentials = "true"
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowedOrigin)
		c.Header("Access-Control-Allow-Methods", cfg.AllowedMethods)
		c.Header("Access-Control-Allow-Headers", cfg.AllowedHeaders)
		c.Header("Access-Control-Allow-Credentials", credentials)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
