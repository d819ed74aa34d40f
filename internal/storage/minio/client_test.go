package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements minioAPI without a network.
type fakeStore struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error

	putErr    error
	getRC     io.ReadCloser
	getErr    error
	removeErr error
	statErr   error
}

func (f *fakeStore) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeStore) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	return f.makeBucketErr
}
func (f *fakeStore) PutObject(_ context.Context, _ string, _ string, _ io.Reader, _ int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	return minioLib.UploadInfo{}, f.putErr
}
func (f *fakeStore) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeStore) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}
func (f *fakeStore) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeStore{bucketExists: true}, "avatars")
		require.NoError(t, err)
		assert.Equal(t, "avatars", c.bucket)
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeStore{bucketExists: false}, "avatars")
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("bucket check fails", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeStore{bucketExistsErr: errors.New("boom")}, "avatars")
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ensure bucket exists")
	})

	t.Run("bucket creation fails", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeStore{makeBucketErr: errors.New("boom")}, "avatars")
		assert.Nil(t, c)
		require.Error(t, err)
	})
}

func TestClient_UploadDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("upload success", func(t *testing.T) {
		c := &Client{api: &fakeStore{}, bucket: "avatars"}
		assert.NoError(t, c.Upload(ctx, "avatars/u/pic.png", bytes.NewReader([]byte("img"))))
	})

	t.Run("upload error", func(t *testing.T) {
		c := &Client{api: &fakeStore{putErr: errors.New("put-fail")}, bucket: "avatars"}
		err := c.Upload(ctx, "avatars/u/pic.png", bytes.NewReader([]byte("img")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
	})

	t.Run("download success", func(t *testing.T) {
		c := &Client{api: &fakeStore{getRC: io.NopCloser(bytes.NewReader([]byte("img")))}, bucket: "avatars"}
		rc, err := c.Download(ctx, "avatars/u/pic.png")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("img"), data)
	})

	t.Run("download error", func(t *testing.T) {
		c := &Client{api: &fakeStore{getErr: errors.New("get-fail")}, bucket: "avatars"}
		rc, err := c.Download(ctx, "avatars/u/pic.png")
		assert.Nil(t, rc)
		require.Error(t, err)
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	c := &Client{api: &fakeStore{}, bucket: "avatars"}
	assert.NoError(t, c.Delete(ctx, "avatars/u/pic.png"))

	c = &Client{api: &fakeStore{removeErr: errors.New("remove-fail")}, bucket: "avatars"}
	assert.Error(t, c.Delete(ctx, "avatars/u/pic.png"))
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		c := &Client{api: &fakeStore{}, bucket: "avatars"}
		ok, err := c.Exists(ctx, "avatars/u/pic.png")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		c := &Client{api: &fakeStore{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "avatars"}
		ok, err := c.Exists(ctx, "avatars/u/absent.png")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("stat error", func(t *testing.T) {
		c := &Client{api: &fakeStore{statErr: errors.New("stat-fail")}, bucket: "avatars"}
		ok, err := c.Exists(ctx, "avatars/u/pic.png")
		require.Error(t, err)
		assert.False(t, ok)
	})
}
