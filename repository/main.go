package repository

import (
	"github.com/poselab/pose-backend/infra"
	"gorm.io/gorm"
)

type Repository struct {
	Db        *gorm.DB
	UserRepo  *UserRepository
	VideoRepo *VideoRepository
	FrameRepo *FrameRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = NewRepository(infra.Postgres.DB)
	return repository
}

// NewRepository builds a repository over an arbitrary gorm handle. Tests use it
// with sqlite.
func NewRepository(db *gorm.DB) *Repository {
	if db == nil {
		panic("database connection is nil")
	}
	return &Repository{
		Db:        db,
		UserRepo:  NewUserRepository(db),
		VideoRepo: NewVideoRepository(db),
		FrameRepo: NewFrameRepository(db),
	}
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}

// Transaction runs fn with a repository bound to a single database transaction.
func (r *Repository) Transaction(fn func(tx *Repository) error) error {
	return r.Db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
