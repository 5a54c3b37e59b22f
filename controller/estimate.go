package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/controller/dto"
	"github.com/poselab/pose-backend/service"
	"github.com/poselab/pose-backend/utils"
)

func (ctrl *Controller) SaveScore(c *gin.Context) {
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

	var req dto.ScoreUploadRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	err := ctrl.Estimate.SaveScore(ctx, userID, videoID, req.Score)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Video not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Estimate] Failed to save score %s/%s: %v", userID, videoID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	utils.JSON200(c, gin.H{"message": "Score saved"})
}

func (ctrl *Controller) GetScore(c *gin.Context) {
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

	score, err := ctrl.Estimate.GetScore(ctx, userID, videoID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Score not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Estimate] Failed to read score %s/%s: %v", userID, videoID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	utils.JSON200(c, dto.ScoreResponseDTO{
		VideoID: videoID,
		Score:   score,
	})
}
