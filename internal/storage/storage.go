// Package storage implements the object store backing file uploads.
// Files are laid out under a base path with one directory per bucket; the
// video and materials buckets are kept logically separate.
package storage

import (
	"io"
	"os"
	"path/filepath"
)

// Bucket names
const (
	BucketVideo     = "video"
	BucketMaterials = "materials"
)

// IsValidBucket checks if the bucket is one of the known buckets
func IsValidBucket(bucket string) bool {
	return bucket == BucketVideo || bucket == BucketMaterials
}

// localStorage implements the object store using the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// objectPath builds the full file path for an object in a bucket
func (s *localStorage) objectPath(bucket, id string) string {
	return filepath.Join(s.basePath, bucket, id)
}

// Create creates a new object and returns a WriteCloser
func (s *localStorage) Create(bucket, id string) (io.WriteCloser, error) {
	path := s.objectPath(bucket, id)

	// Ensure the bucket directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// Open opens an object for reading and returns a ReadCloser
func (s *localStorage) Open(bucket, id string) (io.ReadCloser, error) {
	return os.Open(s.objectPath(bucket, id))
}

// OpenFile opens an object and returns *os.File for use with http.ServeContent
func (s *localStorage) OpenFile(bucket, id string) (*os.File, error) {
	return os.Open(s.objectPath(bucket, id))
}

// Delete removes an object
func (s *localStorage) Delete(bucket, id string) error {
	return os.Remove(s.objectPath(bucket, id))
}
