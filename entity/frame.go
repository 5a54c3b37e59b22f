package entity

import "github.com/google/uuid"

// Joints is kept as raw text so the payload a client uploaded is returned
// byte-for-byte on read.
type Frame struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VideoRef uuid.UUID `json:"video_ref" gorm:"type:uuid;not null;uniqueIndex"`
	Joints   string    `json:"joints" gorm:"type:text;not null"`
	Video    *Video    `json:"video,omitempty" gorm:"foreignKey:VideoRef"`
}
