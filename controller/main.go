package controller

import (
	"time"

	"github.com/poselab/pose-backend/config"
	"github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/repository"
	"github.com/poselab/pose-backend/service"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository

	Auth     *service.AuthService
	Upload   *service.UploadService
	Video    *service.VideoService
	Estimate *service.EstimateService
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}

	env := cfg.EnvConfig

	videoService := service.NewVideoService(
		repo,
		infra.Minio,
		infra.Produce.Cleanup,
		infra.Redis.Client,
		env.Minio.Bucket,
		infra.Logger,
	)

	return &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
		Auth: service.NewAuthService(
			repo,
			videoService,
			infra.Logger,
			[]byte(env.JWT.SecretKey),
			time.Duration(env.JWT.Expire)*time.Second,
		),
		Upload:   service.NewUploadService(repo, infra.Minio, infra.Logger),
		Video:    videoService,
		Estimate: service.NewEstimateService(repo, infra.Redis.Client, infra.Logger),
	}
}
