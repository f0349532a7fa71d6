package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sharedprint/core/storage"
	"sharedprint/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    storage.Location
		wantErr bool
	}{
		{"Local", "export.mrc", storage.Location{Path: "export.mrc"}, false},
		{"Remote", "s3://exports/2024/koha.mrc", storage.Location{Bucket: "exports", Key: "2024/koha.mrc"}, false},
		{"Missing key", "s3://exports", storage.Location{}, true},
		{"Missing bucket", "s3:///koha.mrc", storage.Location{}, true},
		{"Empty", "", storage.Location{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.ParseLocation(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.csv")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

		rc, err := storage.Open(ctx, nil, path)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("Remote object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "exports", "koha.mrc", mock.Anything).
			Return(io.NopCloser(strings.NewReader("remote")), nil)

		rc, err := storage.Open(ctx, client, "s3://exports/koha.mrc")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "remote", string(data))
		client.AssertExpectations(t)
	})

	t.Run("Remote without client", func(t *testing.T) {
		_, err := storage.Open(ctx, nil, "s3://exports/koha.mrc")
		assert.ErrorIs(t, err, storage.ErrNoClient)
	})

	t.Run("Remote error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "exports", "koha.mrc", mock.Anything).
			Return(nil, assert.AnError)

		_, err := storage.Open(ctx, client, "s3://exports/koha.mrc")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/marc", storage.ContentType("exports/koha.MRC"))
	assert.Equal(t, "application/json", storage.ContentType("reports/run.json"))
	assert.Equal(t, "text/csv", storage.ContentType("greenglass.csv"))
	assert.Equal(t, "application/octet-stream", storage.ContentType("noext"))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.mrc")
		wc, err := storage.Create(ctx, nil, path)
		require.NoError(t, err)
		_, err = wc.Write([]byte("records"))
		require.NoError(t, err)
		require.NoError(t, wc.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "records", string(data))
	})

	t.Run("Remote upload on close", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "exports").Return(true, nil)

		var uploaded string
		client.On("PutObject", mock.Anything, "exports", "out.mrc", mock.Anything, int64(7), mock.Anything).
			Run(func(args mock.Arguments) {
				data, _ := io.ReadAll(args.Get(3).(io.Reader))
				uploaded = string(data)
			}).
			Return(minio.UploadInfo{}, nil)

		wc, err := storage.Create(ctx, client, "s3://exports/out.mrc")
		require.NoError(t, err)
		_, err = wc.Write([]byte("records"))
		require.NoError(t, err)

		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		require.NoError(t, wc.Close())
		assert.Equal(t, "records", uploaded)
		client.AssertExpectations(t)
	})

	t.Run("Local file is invisible until closed", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.mrc")
		out, err := storage.Create(ctx, nil, path)
		require.NoError(t, err)
		_, err = out.Write([]byte("records"))
		require.NoError(t, err)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		require.NoError(t, out.Close())
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("Local abort keeps previous file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.mrc")
		require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

		out, err := storage.Create(ctx, nil, path)
		require.NoError(t, err)
		_, err = out.Write([]byte("partial"))
		require.NoError(t, err)
		require.NoError(t, out.Abort())
		require.NoError(t, out.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Remote abort skips upload", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "exports").Return(true, nil)

		out, err := storage.Create(ctx, client, "s3://exports/out.mrc")
		require.NoError(t, err)
		_, err = out.Write([]byte("partial"))
		require.NoError(t, err)
		require.NoError(t, out.Abort())
		require.NoError(t, out.Close())

		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "exports").Return(false, nil)

		_, err := storage.Create(ctx, client, "s3://exports/out.mrc")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}
