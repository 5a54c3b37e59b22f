package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/poselab/pose-backend/entity"
	"github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/repository"
)

// UploadService orchestrates skeleton ingestion and presigned URL issuance.
type UploadService struct {
	repo    *repository.Repository
	storage ObjectStorage
	logger  *infra.LoggerClient
}

func NewUploadService(repo *repository.Repository, storage ObjectStorage, logger *infra.LoggerClient) *UploadService {
	return &UploadService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

type DownloadURL struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
	URL       string `json:"download_url"`
}

// UploadSkeleton persists the joints payload together with freshly allocated
// video metadata. The video id is the owner's live video count plus one,
// zero-padded to four digits; the count-then-insert pair runs inside one
// transaction but is not serialized against concurrent uploads for the same
// owner.
func (s *UploadService) UploadSkeleton(ctx context.Context, userID, videoName, joints string) (*entity.Video, error) {
	var video *entity.Video

	err := s.repo.Transaction(func(tx *repository.Repository) error {
		user, err := tx.UserRepo.GetByUserID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			// First contact through the upload path creates a bare user row.
			user = &entity.User{
				ID:     uuid.New(),
				UserID: userID,
			}
			if err := tx.UserRepo.Create(user); err != nil {
				return err
			}
		}

		count, err := tx.VideoRepo.CountByOwner(user.ID)
		if err != nil {
			return err
		}

		video = &entity.Video{
			ID:        uuid.New(),
			OwnerID:   user.ID,
			VideoID:   fmt.Sprintf("%04d", count+1),
			VideoName: videoName,
		}
		if err := tx.VideoRepo.Create(video); err != nil {
			return err
		}

		frame := &entity.Frame{
			ID:       uuid.New(),
			VideoRef: video.ID,
			Joints:   joints,
		}
		return tx.FrameRepo.Create(frame)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoWithContextf(ctx, "[Upload] Stored skeleton for user %s as video %s", userID, video.VideoID)
	return video, nil
}

// GetSkeleton returns the joints payload exactly as it was uploaded.
func (s *UploadService) GetSkeleton(ctx context.Context, userID, videoID string) (string, error) {
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
	if video == nil {
		return "", ErrNotFound
	}

	frame, err := s.repo.FrameRepo.GetByVideoRef(video.ID)
	if err != nil {
		return "", err
	}
	if frame == nil {
		return "", ErrNotFound
	}

	return frame.Joints, nil
}

// CreateUploadURL presigns a PUT URL for the object key and persists the key on
// the owner's video row. Presigning comes first so a presign failure leaves no
// key naming an object that was never uploaded.
func (s *UploadService) CreateUploadURL(ctx context.Context, userID, videoID, bucket, objectKey string) (string, error) {
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
	if video == nil {
		return "", ErrNotFound
	}

	uploadURL, err := s.storage.PresignedUploadURL(ctx, bucket, objectKey, PresignExpiry)
	if err != nil {
		return "", err
	}

	if err := s.repo.VideoRepo.UpdateObjectKey(video.ID, objectKey); err != nil {
		return "", err
	}

	return uploadURL, nil
}

// CreateDownloadURL presigns a GET URL for the owner's stored object.
func (s *UploadService) CreateDownloadURL(ctx context.Context, userID, videoID, bucket string) (*DownloadURL, error) {
	user, err := s.repo.UserRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	video, err := s.repo.VideoRepo.GetByOwnerAndVideoID(user.ID, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil || video.ObjectKey == "" {
		return nil, ErrNotFound
	}

	downloadURL, err := s.storage.PresignedDownloadURL(ctx, bucket, video.ObjectKey, PresignExpiry)
	if err != nil {
		return nil, err
	}

	return &DownloadURL{
		Bucket:    bucket,
		ObjectKey: video.ObjectKey,
		URL:       downloadURL,
	}, nil
}
