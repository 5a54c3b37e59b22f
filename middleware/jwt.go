package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/config"
	"github.com/poselab/pose-backend/repository"
	"github.com/poselab/pose-backend/utils"
)

// IdentityMiddleware runs on every request. A valid bearer token with a live
// user row establishes the caller's identity in the gin context; anything else
// leaves the request anonymous. Rejecting anonymous access is RequireAuth's
// job, so public endpoints share this gate.
func IdentityMiddleware(cfg *config.EnvConfig, repo *repository.Repository) gin.HandlerFunc {
	secret := []byte(cfg.JWT.SecretKey)

	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		userID, err := utils.VerifyToken(tokenStr, secret)
		if err != nil {
			c.Next()
			return
		}

		user, err := repo.UserRepo.GetByUserID(userID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set("user_id", user.UserID)
		c.Next()
	}
}

// RequireAuth rejects requests for which the identity gate established no user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_id") == "" {
			utils.JSON401(c, "Missing or invalid authorization token")
			c.Abort()
			return
		}
		c.Next()
	}
}
