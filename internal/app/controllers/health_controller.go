package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseboard/internal/app/models/dto"
	"github.com/yigit/courseboard/internal/pkg/logger"
)

// HealthController reports service liveness
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports whether the database is reachable
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.db.Ping(ctx.Request.Context()); err != nil {
		logger.FromContext(ctx.Request.Context()).Error().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}

// Ping answers without touching any dependency
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
