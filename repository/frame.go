package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/poselab/pose-backend/entity"
	"gorm.io/gorm"
)

// FrameRepository handles all database operations for the Frame entity
type FrameRepository struct {
	db *gorm.DB
}

func NewFrameRepository(db *gorm.DB) *FrameRepository {
	return &FrameRepository{
		db: db,
	}
}

func (r *FrameRepository) Create(frame *entity.Frame) error {
	if frame == nil {
		return errors.New("frame cannot be nil")
	}
	return r.db.Create(frame).Error
}

// GetByVideoRef returns (nil, nil) when the video has no frame.
func (r *FrameRepository) GetByVideoRef(videoRef uuid.UUID) (*entity.Frame, error) {
	var frame entity.Frame
	err := r.db.Where("video_ref = ?", videoRef).First(&frame).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &frame, nil
}

func (r *FrameRepository) DeleteByVideoRef(videoRef uuid.UUID) error {
	return r.db.Where("video_ref = ?", videoRef).Delete(&entity.Frame{}).Error
}

func (r *FrameRepository) DeleteByVideoRefs(videoRefs []uuid.UUID) error {
	if len(videoRefs) == 0 {
		return nil
	}
	return r.db.Where("video_ref IN ?", videoRefs).Delete(&entity.Frame{}).Error
}
