package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// driver
	_ "gocloud.dev/blob/memblob"  // mem:// driver
	_ "gocloud.dev/blob/s3blob"   // s3:// driver

	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
)

// BlobArchiver copies build artifacts into a gocloud bucket under <sha>/
type BlobArchiver struct {
	bucket *blob.Bucket
}

// Verify interface compliance at compile time
var _ ports.ArtifactArchiver = (*BlobArchiver)(nil)

// NewBlobArchiver opens the bucket addressed by bucketURL (file://, mem://, s3://, gs://)
func NewBlobArchiver(ctx context.Context, bucketURL string) (*BlobArchiver, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", bucketURL, err)
	}
	return NewBucketArchiver(bucket), nil
}

// NewBucketArchiver wraps an already opened bucket
func NewBucketArchiver(bucket *blob.Bucket) *BlobArchiver {
	return &BlobArchiver{bucket: bucket}
}

// Archive uploads every existing path. Missing files are skipped.
func (a *BlobArchiver) Archive(ctx context.Context, sha string, paths ...string) error {
	var errs []error
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", path, err))
			continue
		}

		key := ObjectKey(sha, path)
		if err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", key, err))
			continue
		}
		logging.Logger.Debug("Artifact archived", "key", key, "size", humanize.Bytes(uint64(len(data))))
	}
	return errors.Join(errs...)
}

// Close releases the bucket
func (a *BlobArchiver) Close() error {
	return a.bucket.Close()
}

// ObjectKey returns the bucket key of an artifact: <sha>/<name without the sha prefix>
func ObjectKey(sha, path string) string {
	name := strings.TrimPrefix(filepath.Base(path), sha+".")
	return sha + "/" + name
}

// NoopArchiver is used when no archive URL is configured
type NoopArchiver struct{}

// Verify interface compliance at compile time
var _ ports.ArtifactArchiver = NoopArchiver{}

func (NoopArchiver) Archive(context.Context, string, ...string) error { return nil }

func (NoopArchiver) Close() error { return nil }
