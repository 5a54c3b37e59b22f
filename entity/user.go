package entity

import "github.com/google/uuid"

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   string    `json:"user_id" gorm:"size:64;uniqueIndex;not null"`
	Password string    `json:"-" gorm:"size:128"`
	Email    string    `json:"email" gorm:"size:255"`
	Videos   []Video   `json:"videos,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
