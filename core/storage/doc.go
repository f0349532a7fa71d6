// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that catalog exports, GreenGlass listings and
// filtered exports can live either on the local disk or in an S3 compatible
// bucket. Paths of the form s3://bucket/key are remote; anything else is a
// local file path.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - Open: streams a local file or a bucket object.
//   - Create: writes a local file, or stages content and uploads it on Close.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	rc, err := storage.Open(ctx, client, "s3://exports/koha.mrc")
//	defer rc.Close()
package storage
