package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kkcy/ticketcare/pkg/response"
)

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check handles GET /healthz
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		status["database"] = "unreachable"
		healthy = false
	}
	if err := h.cache.Ping(ctx); err != nil {
		status["cache"] = "unreachable"
		healthy = false
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Error(response.ErrCodeServiceUnavailable, "Service degraded"))
		return
	}

	c.JSON(http.StatusOK, response.Success(status))
}
