package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/poselab/pose-backend/config"
	"github.com/poselab/pose-backend/controller"
	infraPkg "github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/repository"
	routes "github.com/poselab/pose-backend/route"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	if err := infra.Minio.EnsureBucket(context.Background(), cfg.EnvConfig.Minio.Bucket); err != nil {
		log.Fatalf("Failed to ensure bucket %s: %v", cfg.EnvConfig.Minio.Bucket, err)
	}

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)
	if err := router.Run(":" + cfg.EnvConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
