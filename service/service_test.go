package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poselab/pose-backend/entity"
	"github.com/poselab/pose-backend/infra"
	"github.com/poselab/pose-backend/infra/produce"
	"github.com/poselab/pose-backend/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestRepo opens a fresh in-memory sqlite database per test. The named
// shared-cache DSN keeps gorm's connection pool pointed at the same database.
func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Video{}, &entity.Frame{}))

	return repository.NewRepository(db)
}

func newTestLogger() *infra.LoggerClient {
	return infra.NewLoggerClient(slog.New(slog.DiscardHandler))
}

// fakeStorage records deletions and presigns deterministic URLs.
type fakeStorage struct {
	presignErr  error
	deleteErr   error
	deletedKeys []string
}

func (f *fakeStorage) PresignedUploadURL(_ context.Context, bucket, objectKey string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return fmt.Sprintf("https://storage.test/%s/%s?method=put", bucket, objectKey), nil
}

func (f *fakeStorage) PresignedDownloadURL(_ context.Context, bucket, objectKey string, _ time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/%s/%s?method=get", bucket, objectKey), nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, _, objectKey string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedKeys = append(f.deletedKeys, objectKey)
	return nil
}

// fakePublisher collects queued cleanup messages.
type fakePublisher struct {
	messages []produce.OrphanedObjectMessage
}

func (f *fakePublisher) PublishOrphanedObject(_ context.Context, msg produce.OrphanedObjectMessage) error {
	f.messages = append(f.messages, msg)
	return nil
}

type testServices struct {
	repo     *repository.Repository
	storage  *fakeStorage
	cleanup  *fakePublisher
	auth     *AuthService
	upload   *UploadService
	video    *VideoService
	estimate *EstimateService
}

const testBucket = "pose-videos-test"

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	repo := newTestRepo(t)
	logger := newTestLogger()
	storage := &fakeStorage{}
	cleanup := &fakePublisher{}

	video := NewVideoService(repo, storage, cleanup, nil, testBucket, logger)

	return &testServices{
		repo:     repo,
		storage:  storage,
		cleanup:  cleanup,
		auth:     NewAuthService(repo, video, logger, []byte("test-secret"), time.Hour),
		upload:   NewUploadService(repo, storage, logger),
		video:    video,
		estimate: NewEstimateService(repo, nil, logger),
	}
}
