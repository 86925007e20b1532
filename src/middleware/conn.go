package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/tmcybertech/portal-api/src/database"
)

// ConnKey is the context key holding the request-scoped connection
const ConnKey = "db_conn"

// Connection checks out one storage connection per request and releases it on
// every exit path: normal return, handled error, or panic (gin.Recovery sits
// outside this middleware, so the deferred release runs first).
func Connection(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := db.Acquire(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to acquire database connection")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		defer conn.Release()

		c.Set(ConnKey, conn)
		c.Next()
	}
}

// Conn retrieves the request-scoped connection set by Connection
func Conn(c *gin.Context) database.Querier {
	if v, exists := c.Get(ConnKey); exists {
		if conn, ok := v.(*pgxpool.Conn); ok {
			return conn
		}
		if q, ok := v.(database.Querier); ok {
			return q
		}
	}
	return nil
}
