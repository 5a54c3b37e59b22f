package repository

import (
	"errors"

	"github.com/poselab/pose-backend/entity"
	"gorm.io/gorm"
)

// UserRepository handles all database operations for the User entity
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(user *entity.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	return r.db.Create(user).Error
}

// GetByUserID looks a user up by its external identifier. Returns (nil, nil)
// when no row matches.
func (r *UserRepository) GetByUserID(userID string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUserID(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.User{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Delete(user *entity.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	return r.db.Delete(user).Error
}
