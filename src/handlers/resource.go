package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tmcybertech/portal-api/src/middleware"
	"github.com/tmcybertech/portal-api/src/resources"
	"github.com/tmcybertech/portal-api/src/services"
)

// ResourceHandler serves the generic CRUD endpoints for one descriptor
type ResourceHandler struct {
	desc *resources.Descriptor
}

// NewResourceHandler creates a handler bound to a resource descriptor
func NewResourceHandler(desc *resources.Descriptor) *ResourceHandler {
	return &ResourceHandler{desc: desc}
}

// HandleList returns all rows, newest first. An empty table is 200 with an
// empty array, never 404.
func (rh *ResourceHandler) HandleList(c *gin.Context) {
	result, err := services.List(c.Request.Context(), middleware.Conn(c), rh.desc)
	if err != nil {
		rh.internalError(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGet returns the single row selected by the id query parameter
func (rh *ResourceHandler) HandleGet(c *gin.Context) {
	id, ok := rh.requireID(c)
	if !ok {
		return
	}

	row, err := services.Get(c.Request.Context(), middleware.Conn(c), rh.desc, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": rh.desc.NotFoundMessage})
			return
		}
		rh.internalError(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, row)
}

// HandleCreate inserts one row from the JSON body
func (rh *ResourceHandler) HandleCreate(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	row, err := services.Create(c.Request.Context(), middleware.Conn(c), rh.desc, body)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": rh.desc.MissingCreateMessage})
			return
		}
		rh.internalError(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, row)
}

// HandleUpdate rewrites the row selected by the id query parameter
func (rh *ResourceHandler) HandleUpdate(c *gin.Context) {
	id, ok := rh.requireID(c)
	if !ok {
		return
	}

	body, ok := bindBody(c)
	if !ok {
		return
	}

	row, err := services.Update(c.Request.Context(), middleware.Conn(c), rh.desc, id, body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": rh.desc.MissingUpdateMessage})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": rh.desc.NotFoundMessage})
		default:
			rh.internalError(c, "update", err)
		}
		return
	}

	c.JSON(http.StatusOK, row)
}

// HandleDelete removes the row selected by the id query parameter. Repeating
// a delete keeps returning 404, never an error.
func (rh *ResourceHandler) HandleDelete(c *gin.Context) {
	id, ok := rh.requireID(c)
	if !ok {
		return
	}

	err := services.Delete(c.Request.Context(), middleware.Conn(c), rh.desc, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": rh.desc.NotFoundMessage})
			return
		}
		rh.internalError(c, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rh *ResourceHandler) requireID(c *gin.Context) (string, bool) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return "", false
	}
	return id, true
}

// internalError logs the raw storage error and replies with the generic
// message; driver error text never reaches the caller.
func (rh *ResourceHandler) internalError(c *gin.Context, op string, err error) {
	log.Error().
		Err(err).
		Str("resource", rh.desc.Name).
		Str("operation", op).
		Str("request_id", middleware.GetRequestID(c)).
		Msg("resource operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// bindBody parses the request body as a JSON object, rejecting malformed
// payloads with the distinct 400 message
func bindBody(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return nil, false
	}
	return body, true
}
