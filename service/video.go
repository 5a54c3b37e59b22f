package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/infra/produce"
	"github.com/poselab/pose-backend/repository"
	"github.com/redis/go-redis/v9"
)

// VideoService owns listing and the delete lifecycle. Storage-object deletion
// is best-effort: a failure is logged, a cleanup job is queued when a publisher
// is wired, and the database rows are removed regardless.
type VideoService struct {
	repo    *repository.Repository
	storage ObjectStorage
	cleanup CleanupPublisher
	cache   *redis.Client
	bucket  string
	logger  *infra.LoggerClient
}

func NewVideoService(repo *repository.Repository, storage ObjectStorage, cleanup CleanupPublisher, cache *redis.Client, bucket string, logger *infra.LoggerClient) *VideoService {
	return &VideoService{
		repo:    repo,
		storage: storage,
		cleanup: cleanup,
		cache:   cache,
		bucket:  bucket,
		logger:  logger,
	}
}

type VideoInfo struct {
	VideoID    string    `json:"video_id"`
	VideoName  string    `json:"video_name"`
	UploadTime time.Time `json:"upload_time"`
}

// ListVideos projects the owner's videos to (id, name, upload time), ascending
// upload time. An unknown owner yields an empty list, not an error.
func (s *VideoService) ListVideos(ctx context.Context, userID string) ([]VideoInfo, error) {
	user, err := s.repo.UserRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []VideoInfo{}, nil
	}

	videos, err := s.repo.VideoRepo.ListByOwner(user.ID)
	if err != nil {
		return nil, err
	}

	infos := make([]VideoInfo, 0, len(videos))
	for _, v := range videos {
		infos = append(infos, VideoInfo{
			VideoID:    v.VideoID,
			VideoName:  v.VideoName,
			UploadTime: v.UploadTime,
		})
	}
	return infos, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, userID, videoID string) error {
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

	if video.ObjectKey != "" {
		s.deleteObjectBestEffort(ctx, user.ID, video.ObjectKey)
	}

	err = s.repo.Transaction(func(tx *repository.Repository) error {
		if err := tx.FrameRepo.DeleteByVideoRef(video.ID); err != nil {
			return err
		}
		return tx.VideoRepo.Delete(video)
	})
	if err != nil {
		return err
	}

	s.invalidateScoreCache(ctx, userID, videoID)
	return nil
}

// DeleteUser removes the user with every video, frame and storage object it
// owns. Returns false when the user does not exist.
func (s *VideoService) DeleteUser(ctx context.Context, userID string) (bool, error) {
	user, err := s.repo.UserRepo.GetByUserID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	videos, err := s.repo.VideoRepo.ListByOwner(user.ID)
	if err != nil {
		return false, err
	}

	videoRefs := make([]uuid.UUID, 0, len(videos))
	for _, video := range videos {
		videoRefs = append(videoRefs, video.ID)
		if video.ObjectKey != "" {
			s.deleteObjectBestEffort(ctx, user.ID, video.ObjectKey)
		}
	}

	err = s.repo.Transaction(func(tx *repository.Repository) error {
		if err := tx.FrameRepo.DeleteByVideoRefs(videoRefs); err != nil {
			return err
		}
		if err := tx.VideoRepo.DeleteByOwner(user.ID); err != nil {
			return err
		}
		return tx.UserRepo.Delete(user)
	})
	if err != nil {
		return false, err
	}

	for _, video := range videos {
		s.invalidateScoreCache(ctx, userID, video.VideoID)
	}

	s.logger.InfoWithContextf(ctx, "[Video] Deleted user %s with %d videos", userID, len(videos))
	return true, nil
}

func (s *VideoService) deleteObjectBestEffort(ctx context.Context, ownerID uuid.UUID, objectKey string) {
	err := s.storage.DeleteObject(ctx, s.bucket, objectKey)
	if err == nil {
		return
	}

	s.logger.ErrorWithContextf(ctx, err, "[Video] Failed to delete object %s from storage, queueing cleanup", objectKey)

	if s.cleanup == nil {
		return
	}
	publishErr := s.cleanup.PublishOrphanedObject(ctx, produce.OrphanedObjectMessage{
		Bucket:    s.bucket,
		ObjectKey: objectKey,
		OwnerID:   ownerID.String(),
		Reason:    err.Error(),
	})
	if publishErr != nil {
		s.logger.ErrorWithContextf(ctx, publishErr, "[Video] Failed to publish cleanup job for object %s", objectKey)
	}
}

func (s *VideoService) invalidateScoreCache(ctx context.Context, userID, videoID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, scoreCacheKey(userID, videoID)).Err(); err != nil {
		s.logger.WarningWithContextf(ctx, "[Video] Failed to invalidate score cache for %s/%s: %v", userID, videoID, err)
	}
}
