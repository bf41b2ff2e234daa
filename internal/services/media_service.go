package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/learnhub-ng/backend/internal/models"
	"github.com/learnhub-ng/backend/internal/uploads"
)

// MediaStorage defines the interface for reading and removing stored objects
type MediaStorage interface {
	// Open opens an object for reading and returns a ReadCloser
	Open(bucket, id string) (io.ReadCloser, error)

	// OpenFile opens an object and returns *os.File for use with http.ServeContent
	OpenFile(bucket, id string) (*os.File, error)

	// Delete removes an object
	Delete(bucket, id string) error
}

// MetadataRepository defines the interface for file metadata data access
type MetadataRepository interface {
	// Create inserts a new file metadata record
	Create(ctx context.Context, metadata *models.FileMetadata) error
	// GetByID retrieves file metadata by ID
	GetByID(ctx context.Context, id string) (*models.FileMetadata, error)
	// DeleteByID deletes file metadata by ID
	DeleteByID(ctx context.Context, id string) error
}

// mediaService handles business logic for file uploads and downloads
type mediaService struct {
	tracker      *uploads.Tracker
	metadataRepo MetadataRepository
	storage      MediaStorage
}

// NewMediaService creates a new media service
func NewMediaService(tracker *uploads.Tracker, metadataRepo MetadataRepository, storage MediaStorage) *mediaService {
	return &mediaService{
		tracker:      tracker,
		metadataRepo: metadataRepo,
		storage:      storage,
	}
}

// Upload runs a tracked upload into the given bucket and records its metadata.
// Only teachers may upload. The call blocks until the transfer finishes and
// returns the final task state, so the caller sees either a completed task
// with a retrievable URL or the error that stopped it.
func (s *mediaService) Upload(ctx context.Context, viewer models.Viewer, bucket, filename, contentType string, size int64, r io.Reader) (models.UploadTask, error) {
	if viewer.Role != models.RoleTeacher {
		return models.UploadTask{}, models.Forbidden("only teachers can upload files")
	}

	var metaErr error
	task, err := s.tracker.Run(bucket, filename, size, r, func(url string, kind uploads.Kind) {
		metadata := &models.FileMetadata{
			ID:          path.Base(url),
			Bucket:      bucket,
			ContentType: contentType,
			Size:        size,
			URL:         url,
			UploadedBy:  viewer.ID,
		}
		metaErr = s.metadataRepo.Create(ctx, metadata)
	})
	if err != nil {
		return task, err
	}

	if metaErr != nil {
		// The object is unreachable without its record, drop both
		s.storage.Delete(bucket, task.ID)
		s.tracker.Remove(task.ID)
		return models.UploadTask{}, fmt.Errorf("failed to record upload: %w", metaErr)
	}

	return task, nil
}

// GetTask returns the state of a tracked upload
func (s *mediaService) GetTask(id string) (models.UploadTask, error) {
	task, ok := s.tracker.Get(id)
	if !ok {
		return models.UploadTask{}, models.NotFound("upload task not found")
	}
	return task, nil
}

// ListTasks returns the state of all tracked uploads
func (s *mediaService) ListTasks() []models.UploadTask {
	return s.tracker.List()
}

// GetMetadata retrieves file metadata by ID
func (s *mediaService) GetMetadata(ctx context.Context, id string) (*models.FileMetadata, error) {
	return s.metadataRepo.GetByID(ctx, id)
}

// GetFile returns an *os.File for use with http.ServeContent
func (s *mediaService) GetFile(bucket, id string) (*os.File, error) {
	file, err := s.storage.OpenFile(bucket, id)
	if os.IsNotExist(err) {
		return nil, models.NotFound("file not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// OpenContent opens a stored object for plain sequential streaming
func (s *mediaService) OpenContent(bucket, id string) (io.ReadCloser, error) {
	rc, err := s.storage.Open(bucket, id)
	if os.IsNotExist(err) {
		return nil, models.NotFound("file not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return rc, nil
}

// DeleteFile removes a stored object together with its metadata record and
// any tracker entry. Only the uploader may delete a file.
func (s *mediaService) DeleteFile(ctx context.Context, viewer models.Viewer, id string) error {
	metadata, err := s.metadataRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if metadata.UploadedBy != viewer.ID {
		return models.Forbidden("you can only delete your own files")
	}

	if err := s.storage.Delete(metadata.Bucket, id); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := s.metadataRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.tracker.Remove(id)
	return nil
}
