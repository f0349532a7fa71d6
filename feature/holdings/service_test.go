package holdings_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"sharedprint/core/marc"
	"sharedprint/core/storage/mocks"
	"sharedprint/feature/holdings"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_ExportLocal(t *testing.T) {
	input, raws := threeRecords()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.mrc")
	out := filepath.Join(dir, "out.mrc")
	require.NoError(t, os.WriteFile(in, input, 0o644))

	svc := holdings.NewService(holdings.DefaultConfig(), nil, zap.NewNop())
	totals, err := svc.Export(context.Background(), in, out)
	require.NoError(t, err)

	assert.Equal(t, 2, totals.Items)
	assert.Equal(t, 1, totals.ValidItems)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, raws[0], written)
}

func TestService_ExportToObjectStorage(t *testing.T) {
	input, raws := threeRecords()
	client := new(mocks.Client)

	client.On("GetObject", mock.Anything, "catalog", "koha.mrc", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(input)), nil)
	client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
	client.On("PutObject", mock.Anything, "exports", "filtered.mrc", mock.Anything, int64(len(raws[0])), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/marc"
	})).Return(minio.UploadInfo{}, nil)

	svc := holdings.NewService(holdings.DefaultConfig(), client, zap.NewNop())
	totals, err := svc.Export(context.Background(), "s3://catalog/koha.mrc", "s3://exports/filtered.mrc")
	require.NoError(t, err)

	assert.Equal(t, 1, totals.IncludedRecords)
	client.AssertExpectations(t)
}

func TestService_AbortedRemoteExportIsNotUploaded(t *testing.T) {
	input, _ := threeRecords()
	input = append(input, []byte("00042garbage")...)
	client := new(mocks.Client)

	client.On("GetObject", mock.Anything, "catalog", "koha.mrc", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(input)), nil)
	client.On("BucketExists", mock.Anything, "exports").Return(true, nil)

	svc := holdings.NewService(holdings.DefaultConfig(), client, zap.NewNop())
	totals, err := svc.Export(context.Background(), "s3://catalog/koha.mrc", "s3://exports/filtered.mrc")

	require.Error(t, err)
	assert.ErrorIs(t, err, marc.ErrMalformed)
	assert.Equal(t, holdings.Totals{}, totals)
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AbortedLocalExportLeavesNoFile(t *testing.T) {
	input, _ := threeRecords()
	input = append(input, []byte("00042garbage")...)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.mrc")
	out := filepath.Join(dir, "out.mrc")
	require.NoError(t, os.WriteFile(in, input, 0o644))

	svc := holdings.NewService(holdings.DefaultConfig(), nil, zap.NewNop())
	_, err := svc.Export(context.Background(), in, out)
	require.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_Count(t *testing.T) {
	input, _ := threeRecords()
	in := filepath.Join(t.TempDir(), "in.mrc")
	require.NoError(t, os.WriteFile(in, input, 0o644))

	svc := holdings.NewService(holdings.DefaultConfig(), nil, zap.NewNop())
	totals, err := svc.Count(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, holdings.Totals{Records: 3, IncludedRecords: 1, Items: 2, ValidItems: 1}, totals)
}

func TestService_MissingInput(t *testing.T) {
	svc := holdings.NewService(holdings.DefaultConfig(), nil, zap.NewNop())
	_, err := svc.Count(context.Background(), filepath.Join(t.TempDir(), "absent.mrc"))
	assert.Error(t, err)
}
