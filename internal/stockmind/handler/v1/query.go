// Package v1 implements the stockmind HTTP handlers.
package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kiosk404/stockmind/internal/agent/errno"
)

// QueryProcessor answers a natural language query.
type QueryProcessor interface {
	ProcessQuery(ctx context.Context, query string) (string, error)
}

type QueryHandler struct {
	processor QueryProcessor
	log       *logrus.Logger
}

func NewQueryHandler(p QueryProcessor, log *logrus.Logger) *QueryHandler {
	return &QueryHandler{processor: p, log: log}
}

// Process handles POST /process_query.
func (h *QueryHandler) Process(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "request body must carry a non-empty 'query' string"})

		return
	}

	answer, err := h.processor.ProcessQuery(c.Request.Context(), req.Query)
	if err != nil {
		h.log.WithError(err).Error("query processing failed")

		switch {
		case errors.Is(err, errno.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		case errors.Is(err, errno.ErrMaxTurnsExceeded):
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Detail: "the agent could not complete the request within the allowed number of steps",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Detail: "An internal server error occurred while processing your request.",
			})
		}

		return
	}

	c.JSON(http.StatusOK, QueryResponse{Response: answer})
}
