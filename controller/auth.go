package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/controller/dto"
	"github.com/poselab/pose-backend/service"
	"github.com/poselab/pose-backend/utils"
)

func (ctrl *Controller) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignupRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	err := ctrl.Auth.Signup(ctx, req.UserID, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			utils.JSON409(c, "User ID already exists")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Signup failed for %s: %v", req.UserID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	utils.JSON200(c, gin.H{"message": "Signup completed"})
}

func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	token, err := ctrl.Auth.Login(ctx, req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			utils.JSON400(c, "Invalid user or password")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Login failed for %s: %v", req.UserID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	utils.JSON200(c, dto.LoginResponseDTO{Token: token})
}

func (ctrl *Controller) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString("user_id")
	if userID == "" {
		utils.JSON401(c, "Unauthorized")
		return
	}

	err := ctrl.Auth.DeleteAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "User not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to delete user %s: %v", userID, err)
		utils.JSON500(c, "Internal server error")
		return
	}

	c.Status(204)
}
