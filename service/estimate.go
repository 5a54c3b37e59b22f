package service

import (
	"context"
	"fmt"
	"time"

	"github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/repository"
	"github.com/redis/go-redis/v9"
)

const scoreCacheTTL = 10 * time.Minute

// EstimateService stores and reads per-video scores. Reads go through a
// best-effort Redis cache when one is wired; every cache failure falls back to
// the database.
type EstimateService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *infra.LoggerClient
}

func NewEstimateService(repo *repository.Repository, cache *redis.Client, logger *infra.LoggerClient) *EstimateService {
	return &EstimateService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func scoreCacheKey(userID, videoID string) string {
	return fmt.Sprintf("score:%s:%s", userID, videoID)
}

func (s *EstimateService) SaveScore(ctx context.Context, userID, videoID, score string) error {
	user, err := s.repo.UserRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	video, err := s.repo.VideoRepo.GetByOwnerAndVideoID(user.ID, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrNotFound
	}

	if err := s.repo.VideoRepo.UpdateScore(video.ID, score); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scoreCacheKey(userID, videoID), score, scoreCacheTTL).Err(); err != nil {
			s.logger.WarningWithContextf(ctx, "[Estimate] Failed to cache score for %s/%s: %v", userID, videoID, err)
		}
	}

	return nil
}

// GetScore returns the stored score. An empty score column reads as not found.
func (s *EstimateService) GetScore(ctx context.Context, userID, videoID string) (string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, scoreCacheKey(userID, videoID)).Result()
		if err == nil && cached != "" {
			return cached, nil
		}
	}

	user, err := s.repo.UserRepo.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrNotFound
	}

	video, err := s.repo.VideoRepo.GetByOwnerAndVideoID(user.ID, videoID)
	if err != nil {
		return "", err
	}
	if video == nil || video.Score == "" {
		return "", ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scoreCacheKey(userID, videoID), video.Score, scoreCacheTTL).Err(); err != nil {
			s.logger.WarningWithContextf(ctx, "[Estimate] Failed to cache score for %s/%s: %v", userID, videoID, err)
		}
	}

	return video.Score, nil
}
