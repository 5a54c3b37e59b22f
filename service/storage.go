package service

import (
	"context"
	"fmt"
	"time"

	"github.com/poselab/pose-backend/infra/produce"
)

// PresignExpiry is the lifetime of every presigned upload/download URL.
const PresignExpiry = 10 * time.Minute

// ObjectStorage is the slice of the MinIO client the services need. Tests
// substitute a fake.
type ObjectStorage interface {
	PresignedUploadURL(ctx context.Context, bucket, objectKey string, expiry time.Duration) (string, error)
	PresignedDownloadURL(ctx context.Context, bucket, objectKey string, expiry time.Duration) (string, error)
	DeleteObject(ctx context.Context, bucket, objectKey string) error
}

// CleanupPublisher queues object keys whose storage deletion failed.
type CleanupPublisher interface {
	PublishOrphanedObject(ctx context.Context, msg produce.OrphanedObjectMessage) error
}

// BuildObjectKey is the single formula shared by presigning and persistence:
// the key written to the video row must be the key the URL was signed for.
func BuildObjectKey(userID, videoID, videoName, fileExtension string) string {
	return fmt.Sprintf("%s-%s-%s%s", userID, videoID, videoName, fileExtension)
}
