package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/utils"
)

// HealthCheck reports database and object-storage reachability.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	status := gin.H{
		"status":   "ok",
		"database": "ok",
		"storage":  "ok",
	}
	healthy := true

	if err := ctrl.Infra.Postgres.Ping(); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Database ping failed: %v", err)
		status["database"] = "unavailable"
		healthy = false
	}

	if err := ctrl.Infra.Minio.Health(ctx); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Storage check failed: %v", err)
		status["storage"] = "unavailable"
		healthy = false
	}

	if !healthy {
		status["status"] = "degraded"
		c.JSON(503, status)
		return
	}

	utils.JSON200(c, status)
}
