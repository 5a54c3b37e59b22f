package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/service"
	"github.com/poselab/pose-backend/utils"
)

func (ctrl *Controller) ListVideos(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString("user_id")
	if userID == "" {
		utils.JSON401(c, "Unauthorized")
		return
	}

	videos, err := ctrl.Video.ListVideos(ctx, userID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to list videos for %s: %v", userID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	utils.JSON200(c, gin.H{"videos": videos})
}

func (ctrl *Controller) DeleteVideo(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString("user_id")
	if userID == "" {
		utils.JSON401(c, "Unauthorized")
		return
	}

	videoID := c.Param("videoId")
	if videoID == "" {
		utils.JSON400(c, "videoId is required")
		return
	}

	err := ctrl.Video.DeleteVideo(ctx, userID, videoID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Video not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to delete video %s/%s: %v", userID, videoID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	c.Status(204)
}
