package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tmcybertech/portal-api/src/config"
	"github.com/tmcybertech/portal-api/src/database"
	"github.com/tmcybertech/portal-api/src/middleware"
	"github.com/tmcybertech/portal-api/src/resources"
)

// NewRouter builds the full route table. Per-request order for protected
// endpoints: CORS (OPTIONS short-circuits here), auth gate, connection
// acquisition, handler.
func NewRouter(db *database.Database, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.FrontendURL)))

	// Unregistered verbs on known paths; the global chain above still runs,
	// so OPTIONS is answered by the CORS middleware before reaching here
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	healthHandler := NewHealthHandler(db)
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	authed := middleware.Auth()
	conn := middleware.Connection(db)

	api := router.Group("/api")

	authHandler := NewAuthHandler(cfg.TokenTTL)
	api.POST("/auth/login", conn, authHandler.HandleLogin)

	// Collection endpoints at /api/<plural>, item endpoints at /api/<singular>
	// with the id carried as a query parameter
	for _, desc := range []*resources.Descriptor{
		&resources.Admins,
		&resources.Employees,
		&resources.Certificates,
		&resources.Tasks,
	} {
		h := NewResourceHandler(desc)
		collection := "/" + desc.Name + "s"
		item := "/" + desc.Name

		api.GET(collection, authed, conn, h.HandleList)
		api.POST(collection, authed, conn, h.HandleCreate)
		api.GET(item, authed, conn, h.HandleGet)
		api.PUT(item, authed, conn, h.HandleUpdate)
		api.DELETE(item, authed, conn, h.HandleDelete)
	}

	// Public contact form: submission is rate limited per IP, listing is
	// intentionally unauthenticated
	contactHandler := NewResourceHandler(&resources.Contacts)
	contactLimit := middleware.RateLimit(middleware.RateLimitConfig{RequestsPerMinute: 10, Burst: 5})
	api.POST("/contact/submit", contactLimit, conn, contactHandler.HandleCreate)
	api.GET("/contact/list", conn, contactHandler.HandleList)

	if cfg.RawQueryEnabled {
		queryHandler := NewQueryHandler()
		api.POST("/query", authed, conn, queryHandler.HandleQuery)
	}

	return router
}
