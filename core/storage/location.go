package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Scheme prefixes paths that live in object storage, e.g. s3://exports/koha.mrc.
const Scheme = "s3://"

// ErrNoClient is returned when a remote location is used without a storage client.
var ErrNoClient = errors.New("storage client not configured")

// Location is a parsed path that is either local or an object in a bucket.
type Location struct {
	Bucket string
	Key    string
	Path   string
}

// IsRemote reports whether the location points into object storage.
func (l Location) IsRemote() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.IsRemote() {
		return Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// ContentType returns the MIME type uploads of key are stored with.
func ContentType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".mrc", ".marc":
		return "application/marc"
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// IsRemote reports whether path uses the s3:// scheme.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, Scheme)
}

// ParseLocation splits an s3://bucket/key path, or returns a local location.
func ParseLocation(path string) (Location, error) {
	if !IsRemote(path) {
		if path == "" {
			return Location{}, errors.New("empty path")
		}
		return Location{Path: path}, nil
	}

	rest := strings.TrimPrefix(path, Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid object location %q: want s3://bucket/key", path)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// Open returns a reader for path. Remote paths are streamed from the bucket.
func Open(ctx context.Context, client Client, path string) (io.ReadCloser, error) {
	loc, err := ParseLocation(path)
	if err != nil {
		return nil, err
	}

	if !loc.IsRemote() {
		f, err := os.Open(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", loc.Path, err)
		}
		return f, nil
	}

	if client == nil {
		return nil, fmt.Errorf("open %s: %w", loc, ErrNoClient)
	}
	obj, err := client.GetObject(ctx, loc.Bucket, loc.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", loc, err)
	}
	return obj, nil
}

// Output is a pending destination. Close publishes what was written; Abort
// discards it and leaves any existing destination untouched. After either
// call the other is a no-op.
type Output interface {
	io.WriteCloser
	Abort() error
}

// Create returns an Output for path. Content is staged in a temporary file:
// local outputs are renamed into place on Close, remote outputs are uploaded
// on Close.
func Create(ctx context.Context, client Client, path string) (Output, error) {
	loc, err := ParseLocation(path)
	if err != nil {
		return nil, err
	}

	if !loc.IsRemote() {
		dir, base := filepath.Split(loc.Path)
		if dir == "" {
			dir = "."
		}
		tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", loc.Path, err)
		}
		return &fileOutput{tmp: tmp, path: loc.Path}, nil
	}

	if client == nil {
		return nil, fmt.Errorf("create %s: %w", loc, ErrNoClient)
	}
	exists, err := client.BucketExists(ctx, loc.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", loc.Bucket)
	}

	tmp, err := os.CreateTemp("", "sharedprint-*.upload")
	if err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}
	return &uploadOutput{ctx: ctx, client: client, loc: loc, tmp: tmp}, nil
}

type fileOutput struct {
	tmp  *os.File
	path string
	done bool
}

func (o *fileOutput) Write(p []byte) (int, error) {
	return o.tmp.Write(p)
}

// Close renames the staged file onto the destination.
func (o *fileOutput) Close() error {
	if o.done {
		return nil
	}
	o.done = true

	if err := o.tmp.Close(); err != nil {
		os.Remove(o.tmp.Name())
		return fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	if err := os.Chmod(o.tmp.Name(), 0o644); err != nil {
		os.Remove(o.tmp.Name())
		return fmt.Errorf("failed to create %s: %w", o.path, err)
	}
	if err := os.Rename(o.tmp.Name(), o.path); err != nil {
		os.Remove(o.tmp.Name())
		return fmt.Errorf("failed to create %s: %w", o.path, err)
	}
	return nil
}

func (o *fileOutput) Abort() error {
	if o.done {
		return nil
	}
	o.done = true
	o.tmp.Close()
	return os.Remove(o.tmp.Name())
}

type uploadOutput struct {
	ctx    context.Context
	client Client
	loc    Location
	tmp    *os.File
	done   bool
}

func (o *uploadOutput) Write(p []byte) (int, error) {
	return o.tmp.Write(p)
}

// Close uploads the staged content and removes the temporary file.
func (o *uploadOutput) Close() error {
	if o.done {
		return nil
	}
	o.done = true
	defer os.Remove(o.tmp.Name())
	defer o.tmp.Close()

	size, err := o.tmp.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := o.tmp.Seek(0, io.SeekStart); err != nil {
		return err
	}

	_, err = o.client.PutObject(o.ctx, o.loc.Bucket, o.loc.Key, o.tmp, size, minio.PutObjectOptions{
		ContentType: ContentType(o.loc.Key),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", o.loc, err)
	}
	return nil
}

// Abort removes the staged content without uploading it.
func (o *uploadOutput) Abort() error {
	if o.done {
		return nil
	}
	o.done = true
	o.tmp.Close()
	return os.Remove(o.tmp.Name())
}
