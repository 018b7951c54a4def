package ports

import (
	"context"
	"io"
)

// ObjectStorage holds binary objects such as storyboard panel images.
type ObjectStorage interface {
	// Upload writes size bytes from r to bucket/key and returns the public URL of the object.
	Upload(ctx context.Context, bucket, key, contentType string, r io.Reader, size int64) (url string, err error)
	// Delete removes bucket/key. Removing a missing object is not an error.
	Delete(ctx context.Context, bucket, key string) error
}
