package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/poselab/pose-backend/entity"
	"gorm.io/gorm"
)

// VideoRepository handles all database operations for the Video entity
type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{
		db: db,
	}
}

func (r *VideoRepository) Create(video *entity.Video) error {
	if video == nil {
		return errors.New("video cannot be nil")
	}
	return r.db.Create(video).Error
}

func (r *VideoRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Video{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// GetByOwnerAndVideoID returns (nil, nil) when the owner has no video with that
// id, so absence and wrong ownership are indistinguishable to callers.
func (r *VideoRepository) GetByOwnerAndVideoID(ownerID uuid.UUID, videoID string) (*entity.Video, error) {
	var video entity.Video
	err := r.db.Where("owner_id = ? AND video_id = ?", ownerID, videoID).First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) ListByOwner(ownerID uuid.UUID) ([]entity.Video, error) {
	var videos []entity.Video
	err := r.db.Where("owner_id = ?", ownerID).Order("upload_time asc").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) UpdateObjectKey(id uuid.UUID, objectKey string) error {
	return r.db.Model(&entity.Video{}).Where("id = ?", id).Update("object_key", objectKey).Error
}

func (r *VideoRepository) UpdateScore(id uuid.UUID, score string) error {
	return r.db.Model(&entity.Video{}).Where("id = ?", id).Update("score", score).Error
}

func (r *VideoRepository) Delete(video *entity.Video) error {
	if video == nil {
		return errors.New("video cannot be nil")
	}
	return r.db.Delete(video).Error
}

func (r *VideoRepository) DeleteByOwner(ownerID uuid.UUID) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&entity.Video{}).Error
}
