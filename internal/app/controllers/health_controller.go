package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// DBPinger is satisfied by the connection pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness and readiness probes
type HealthController struct {
	db DBPinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db DBPinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports that the process is up
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Ready reports whether the database answers
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/ready [get]
func (c *HealthController) Ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readinessTimeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Readiness check failed: database ping")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"database": "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"database": "ok"})
}
