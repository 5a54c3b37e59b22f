package infra

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/poselab/pose-backend/config"
)

type MinioClient struct {
	Client   *minio.Client
	Admin    *madmin.AdminClient
	Endpoint string
	Bucket   string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	accessKey := cfg.Minio.AccessKey
	if accessKey == "" {
		panic("MinIO access key is not configured")
	}

	secretKey := cfg.Minio.SecretKey
	if secretKey == "" {
		panic("MinIO secret key is not configured")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	madminClient, err := madmin.New(endpoint, accessKey, secretKey, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	return &MinioClient{
		Client:   minioClient,
		Admin:    madminClient,
		Endpoint: endpoint,
		Bucket:   cfg.Minio.Bucket,
	}
}

// EnsureBucket creates the bucket if it doesn't exist
func (m *MinioClient) EnsureBucket(ctx context.Context, bucketName string) error {
	if bucketName == "" {
		return fmt.Errorf("bucketName cannot be empty")
	}

	exists, err := m.Client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// PresignedUploadURL returns a time-limited PUT URL for the given object key
func (m *MinioClient) PresignedUploadURL(ctx context.Context, bucketName, objectKey string, expiry time.Duration) (string, error) {
	if bucketName == "" || objectKey == "" {
		return "", fmt.Errorf("bucketName and objectKey cannot be empty")
	}

	presigned, err := m.Client.PresignedPutObject(ctx, bucketName, objectKey, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL: %w", err)
	}

	return presigned.String(), nil
}

// PresignedDownloadURL returns a time-limited GET URL for the given object key
func (m *MinioClient) PresignedDownloadURL(ctx context.Context, bucketName, objectKey string, expiry time.Duration) (string, error) {
	if bucketName == "" || objectKey == "" {
		return "", fmt.Errorf("bucketName and objectKey cannot be empty")
	}

	presigned, err := m.Client.PresignedGetObject(ctx, bucketName, objectKey, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign download URL: %w", err)
	}

	return presigned.String(), nil
}

// DeleteObject removes an object from a bucket
func (m *MinioClient) DeleteObject(ctx context.Context, bucketName, objectKey string) error {
	if bucketName == "" || objectKey == "" {
		return fmt.Errorf("bucketName and objectKey cannot be empty")
	}

	if err := m.Client.RemoveObject(ctx, bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// Health checks that the storage backend answers admin requests
func (m *MinioClient) Health(ctx context.Context) error {
	if _, err := m.Admin.ServerInfo(ctx); err != nil {
		return fmt.Errorf("minio server info: %w", err)
	}
	return nil
}
