package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/controller"
	middlewares "github.com/poselab/pose-backend/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	r.Use(middles.IdentityMiddleware)

	r.GET("/health", ctrl.HealthCheck)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", ctrl.Signup)
		authRoutes.POST("/login", ctrl.Login)
		authRoutes.DELETE("/users", middles.RequireAuth, ctrl.DeleteUser)
	}

	apiRoutes := r.Group("/api")
	{
		apiRoutes.Use(middles.RequireAuth)

		uploadRoutes := apiRoutes.Group("/upload")
		{
			uploadRoutes.POST("/skeleton", ctrl.UploadSkeleton)
		}

		skeletonRoutes := apiRoutes.Group("/skeleton")
		{
			skeletonRoutes.GET("/videos/:videoId", ctrl.GetSkeleton)
		}

		scoreRoutes := apiRoutes.Group("/score")
		{
			scoreRoutes.POST("/videos/:videoId/score", ctrl.SaveScore)
			scoreRoutes.GET("/videos/:videoId", ctrl.GetScore)
		}

		videoRoutes := apiRoutes.Group("/videos")
		{
			videoRoutes.GET("", ctrl.ListVideos)
			videoRoutes.DELETE("/:videoId", ctrl.DeleteVideo)
		}

		downloadRoutes := apiRoutes.Group("/download")
		{
			downloadRoutes.GET("/videos/:videoId", ctrl.GetDownloadURL)
		}
	}

	return r
}
