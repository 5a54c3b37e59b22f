package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadSkeleton_SequentialVideoIDs(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	first, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{"frames":[]}`)
	require.NoError(t, err)
	require.Equal(t, "0001", first.VideoID)

	second, err := svc.upload.UploadSkeleton(ctx, "alice", "lunge", `{"frames":[]}`)
	require.NoError(t, err)
	require.Equal(t, "0002", second.VideoID)
}

func TestUploadSkeleton_CountsPerOwner(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	video, err := svc.upload.UploadSkeleton(ctx, "bob", "squat", `{}`)
	require.NoError(t, err)
	require.Equal(t, "0001", video.VideoID)
}

func TestUploadSkeleton_CreatesBareUser(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	user, err := svc.repo.UserRepo.GetByUserID("ghost")
	require.NoError(t, err)
	require.Nil(t, user)

	_, err = svc.upload.UploadSkeleton(ctx, "ghost", "squat", `{}`)
	require.NoError(t, err)

	user, err = svc.repo.UserRepo.GetByUserID("ghost")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Empty(t, user.Password)
}

func TestGetSkeleton_RoundTripsJointsVerbatim(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	joints := `{"frames":[{"t":0.033,"keypoints":[[0.1,0.2,0.99],[0.3,0.4,0.97]]}],"fps":30}`

	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", joints)
	require.NoError(t, err)

	got, err := svc.upload.GetSkeleton(ctx, "alice", video.VideoID)
	require.NoError(t, err)
	require.Equal(t, joints, got)
}

func TestGetSkeleton_WrongOwner(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	_, err = svc.upload.GetSkeleton(ctx, "bob", video.VideoID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetSkeleton_UnknownVideo(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	_, err = svc.upload.GetSkeleton(ctx, "alice", "9999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUploadURL_PersistsObjectKey(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	objectKey := BuildObjectKey("alice", video.VideoID, "squat", ".mp4")
	url, err := svc.upload.CreateUploadURL(ctx, "alice", video.VideoID, testBucket, objectKey)
	require.NoError(t, err)
	require.Contains(t, url, objectKey)

	user, err := svc.repo.UserRepo.GetByUserID("alice")
	require.NoError(t, err)
	stored, err := svc.repo.VideoRepo.GetByOwnerAndVideoID(user.ID, video.VideoID)
	require.NoError(t, err)
	require.Equal(t, objectKey, stored.ObjectKey)
}

func TestCreateUploadURL_PresignFailureLeavesNoKey(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	svc.storage.presignErr = errors.New("connection refused")

	objectKey := BuildObjectKey("alice", video.VideoID, "squat", ".mp4")
	_, err = svc.upload.CreateUploadURL(ctx, "alice", video.VideoID, testBucket, objectKey)
	require.Error(t, err)

	user, err := svc.repo.UserRepo.GetByUserID("alice")
	require.NoError(t, err)
	stored, err := svc.repo.VideoRepo.GetByOwnerAndVideoID(user.ID, video.VideoID)
	require.NoError(t, err)
	require.Empty(t, stored.ObjectKey)
}

func TestCreateUploadURL_WrongOwner(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	_, err = svc.upload.CreateUploadURL(ctx, "bob", video.VideoID, testBucket, "bob-key")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDownloadURL_NoStoredObject(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	_, err = svc.upload.CreateDownloadURL(ctx, "alice", video.VideoID, testBucket)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDownloadURL_ReturnsStoredKey(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	video, err := svc.upload.UploadSkeleton(ctx, "alice", "squat", `{}`)
	require.NoError(t, err)

	objectKey := BuildObjectKey("alice", video.VideoID, "squat", ".mp4")
	_, err = svc.upload.CreateUploadURL(ctx, "alice", video.VideoID, testBucket, objectKey)
	require.NoError(t, err)

	download, err := svc.upload.CreateDownloadURL(ctx, "alice", video.VideoID, testBucket)
	require.NoError(t, err)
	require.Equal(t, testBucket, download.Bucket)
	require.Equal(t, objectKey, download.ObjectKey)
	require.Contains(t, download.URL, objectKey)
}

func TestBuildObjectKey_Formula(t *testing.T) {
	key := BuildObjectKey("alice", "0001", "squat", ".mp4")
	require.Equal(t, "alice-0001-squat.mp4", key)

	key = BuildObjectKey("alice", "0002", "lunge", "")
	require.Equal(t, "alice-0002-lunge", key)
}
