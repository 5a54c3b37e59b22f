package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/poselab/pose-backend/controller"
)

type Middlewares struct {
	CORSMiddleware     gin.HandlerFunc
	IdentityMiddleware gin.HandlerFunc
	RequireAuth        gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cors := CORSMiddleware(ctrl.Config.EnvConfig)
	identity := IdentityMiddleware(ctrl.Config.EnvConfig, ctrl.Repository)

	return &Middlewares{
		CORSMiddleware:     cors,
		IdentityMiddleware: identity,
		RequireAuth:        RequireAuth(),
	}, nil
}
