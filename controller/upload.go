package controller

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/controller/dto"
	"github.com/poselab/pose-backend/service"
	"github.com/poselab/pose-backend/utils"
)

// UploadSkeleton stores the joints payload, allocates the next video id and
// hands back a presigned PUT URL for the raw video file. The object key written
// to the row and the key the URL is signed for come from the same formula.
func (ctrl *Controller) UploadSkeleton(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString("user_id")
	if userID == "" {
		utils.JSON401(c, "Unauthorized")
		return
	}

	var req dto.SkeletonUploadRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	video, err := ctrl.Upload.UploadSkeleton(ctx, userID, req.VideoName, string(req.Joints))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to store skeleton for %s: %v", userID, err)
		utils.JSON500(c, "Failed to process upload")
		return
	}

	bucket := ctrl.Config.EnvConfig.Minio.Bucket
	objectKey := service.BuildObjectKey(userID, video.VideoID, req.VideoName, req.FileExtension)

	uploadURL, err := ctrl.Upload.CreateUploadURL(ctx, userID, video.VideoID, bucket, objectKey)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to presign upload URL for %s/%s: %v", userID, video.VideoID, err)
		utils.JSON500(c, "Failed to process upload")
		return
	}

	utils.JSON200(c, dto.UploadURLResponseDTO{
		Bucket:    bucket,
		ObjectKey: objectKey,
		UploadURL: uploadURL,
		VideoID:   video.VideoID,
	})
}

func (ctrl *Controller) GetSkeleton(c *gin.Context) {
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

	joints, err := ctrl.Upload.GetSkeleton(ctx, userID, videoID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Video not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to read skeleton %s/%s: %v", userID, videoID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	utils.JSON200(c, dto.SkeletonResponseDTO{
		VideoID: videoID,
		Joints:  json.RawMessage(joints),
	})
}

func (ctrl *Controller) GetDownloadURL(c *gin.Context) {
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

	download, err := ctrl.Upload.CreateDownloadURL(ctx, userID, videoID, ctrl.Config.EnvConfig.Minio.Bucket)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Video not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to presign download URL for %s/%s: %v", userID, videoID, err)
		utils.JSON500(c, "Failed to create download URL")
		return
	}

	utils.JSON200(c, download)
}
