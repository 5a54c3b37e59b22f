package service

import (
	"context"
	"testing"

	"github.com/poselab/pose-backend/utils"
	"github.com/stretchr/testify/require"
)

// Full happy path: signup, login, upload a skeleton, attach the raw video,
// score it, then delete the account and verify nothing survives.
func TestAccountLifecycle(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, svc.auth.Signup(ctx, "alice", "password123", "alice@example.com"))

	token, err := svc.auth.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	subject, err := utils.VerifyToken(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, "alice", subject)

	joints := `{"frames":[{"t":0,"keypoints":[[0.5,0.5,0.9]]}]}`
	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", joints)
	require.NoError(t, err)
	require.Equal(t, "0001", video.VideoID)

	objectKey := BuildObjectKey("alice", video.VideoID, "squat", ".mp4")
	uploadURL, err := svc.upload.CreateUploadURL(ctx, "alice", video.VideoID, testBucket, objectKey)
	require.NoError(t, err)
	require.NotEmpty(t, uploadURL)

	require.NoError(t, svc.estimate.SaveScore(ctx, "alice", video.VideoID, "88"))
	score, err := svc.estimate.GetScore(ctx, "alice", video.VideoID)
	require.NoError(t, err)
	require.Equal(t, "88", score)

	videos, err := svc.video.ListVideos(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, "squat", videos[0].VideoName)

	require.NoError(t, svc.auth.DeleteAccount(ctx, "alice"))

	require.Equal(t, []string{objectKey}, svc.storage.deletedKeys)

	_, err = svc.auth.Login(ctx, "alice", "password123")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.upload.GetSkeleton(ctx, "alice", video.VideoID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.estimate.GetScore(ctx, "alice", video.VideoID)
	require.ErrorIs(t, err, ErrNotFound)

	videos, err = svc.video.ListVideos(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, videos)
}
