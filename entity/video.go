package entity

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index:idx_owner_video"`
	VideoID    string    `json:"video_id" gorm:"size:4;not null;index:idx_owner_video"`
	VideoName  string    `json:"video_name" gorm:"size:255;not null"`
	UploadTime time.Time `json:"upload_time" gorm:"autoCreateTime"`
	ObjectKey  string    `json:"object_key" gorm:"size:1024"`
	Score      string    `json:"score" gorm:"size:32"`
	Owner      *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Frame      *Frame    `json:"frame,omitempty" gorm:"foreignKey:VideoRef;constraint:OnDelete:CASCADE"`
}
