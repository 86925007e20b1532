package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tmcybertech/portal-api/src/middleware"
	"github.com/tmcybertech/portal-api/src/services"
)

// QueryHandler serves the raw SQL passthrough endpoint. Any holder of a valid
// token gets unrestricted read/write access to the store through it, so the
// route is only registered when the operator enables it explicitly.
type QueryHandler struct{}

// NewQueryHandler creates a new query handler
func NewQueryHandler() *QueryHandler {
	return &QueryHandler{}
}

// QueryRequest represents the raw query request body
type QueryRequest struct {
	Query  string `json:"query"`
	Params []any  `json:"params"`
}

// HandleQuery executes the supplied SQL with positional parameters and
// returns the rows verbatim
func (qh *QueryHandler) HandleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	rows, err := services.ExecuteRawQuery(c.Request.Context(), middleware.Conn(c), req.Query, req.Params)
	if err != nil {
		// The raw storage error stays in the log
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("raw query execution failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute query"})
		return
	}

	c.JSON(http.StatusOK, rows)
}
