package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinwf531135-cmd/bi-leads/internal/database"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	db      *database.DB
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{
		db:      db,
		started: time.Now(),
	}
}

// GetHealth returns overall service health including a database ping
func (h *HealthHandler) GetHealth(c *gin.Context) {
	err := h.db.HealthCheck()
	healthy := err == nil

	response := gin.H{
		"healthy":   healthy,
		"uptime":    time.Since(h.started).String(),
		"timestamp": time.Now(),
	}

	if err != nil {
		response["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
