package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/learnhub-ng/backend/internal/models"
	"github.com/learnhub-ng/backend/internal/storage"
	"github.com/learnhub-ng/backend/internal/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// dirStorage is a temp-dir backed object store for tests. It serves both the
// tracker's write side and the media service's read side.
type dirStorage struct {
	root string
}

func newDirStorage(t *testing.T) *dirStorage {
	return &dirStorage{root: t.TempDir()}
}

func (d *dirStorage) objectPath(bucket, id string) string {
	return filepath.Join(d.root, bucket, id)
}

func (d *dirStorage) Create(bucket, id string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Join(d.root, bucket), 0o755); err != nil {
		return nil, err
	}
	return os.Create(d.objectPath(bucket, id))
}

func (d *dirStorage) Open(bucket, id string) (io.ReadCloser, error) {
	return os.Open(d.objectPath(bucket, id))
}

func (d *dirStorage) OpenFile(bucket, id string) (*os.File, error) {
	return os.Open(d.objectPath(bucket, id))
}

func (d *dirStorage) Delete(bucket, id string) error {
	return os.Remove(d.objectPath(bucket, id))
}

func (d *dirStorage) exists(bucket, id string) bool {
	_, err := os.Stat(d.objectPath(bucket, id))
	return err == nil
}

// mockMetadataRepository is a mock implementation of MetadataRepository
type mockMetadataRepository struct {
	records     map[string]*models.FileMetadata
	createErr   error
	deleteCalls int
}

func newMockMetadataRepository() *mockMetadataRepository {
	return &mockMetadataRepository{records: make(map[string]*models.FileMetadata)}
}

func (m *mockMetadataRepository) Create(ctx context.Context, metadata *models.FileMetadata) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records[metadata.ID] = metadata
	return nil
}

func (m *mockMetadataRepository) GetByID(ctx context.Context, id string) (*models.FileMetadata, error) {
	metadata, ok := m.records[id]
	if !ok {
		return nil, models.NotFound("file not found")
	}
	return metadata, nil
}

func (m *mockMetadataRepository) DeleteByID(ctx context.Context, id string) error {
	m.deleteCalls++
	if _, ok := m.records[id]; !ok {
		return models.NotFound("file not found")
	}
	delete(m.records, id)
	return nil
}

func newTestMediaService(t *testing.T) (*mediaService, *dirStorage, *mockMetadataRepository) {
	store := newDirStorage(t)
	repo := newMockMetadataRepository()
	limits := uploads.Limits{MaxVideoSize: 500 << 20, MaxFileSize: 100 << 20}
	tracker := uploads.NewTracker(store, limits, "http://localhost:8080", zap.NewNop())
	return NewMediaService(tracker, repo, store), store, repo
}

func TestMediaService_Upload(t *testing.T) {
	svc, store, repo := newTestMediaService(t)

	content := "lecture notes"
	teacher := models.Viewer{ID: 42, Role: models.RoleTeacher}

	task, err := svc.Upload(context.Background(), teacher, storage.BucketMaterials,
		"notes.pdf", "application/pdf", int64(len(content)), strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, models.UploadStatusCompleted, task.Status)
	assert.True(t, store.exists(storage.BucketMaterials, task.ID))

	metadata, ok := repo.records[task.ID]
	require.True(t, ok)
	assert.Equal(t, "application/pdf", metadata.ContentType)
	assert.Equal(t, 42, metadata.UploadedBy)
	assert.Equal(t, task.URL, metadata.URL)
}

func TestMediaService_Upload_StudentForbidden(t *testing.T) {
	svc, _, repo := newTestMediaService(t)

	student := models.Viewer{ID: 9, Role: models.RoleStudent}

	_, err := svc.Upload(context.Background(), student, storage.BucketMaterials,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))

	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Empty(t, repo.records)
}

func TestMediaService_Upload_InvalidFile(t *testing.T) {
	svc, _, repo := newTestMediaService(t)

	teacher := models.Viewer{ID: 42, Role: models.RoleTeacher}

	_, err := svc.Upload(context.Background(), teacher, storage.BucketVideo,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.records)
}

func TestMediaService_Upload_MetadataFailureDropsObject(t *testing.T) {
	svc, store, repo := newTestMediaService(t)
	repo.createErr = errors.New("db is down")

	teacher := models.Viewer{ID: 42, Role: models.RoleTeacher}

	_, err := svc.Upload(context.Background(), teacher, storage.BucketMaterials,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))

	require.Error(t, err)
	assert.Empty(t, repo.records)
	assert.Empty(t, svc.ListTasks(), "failed upload must not leave a task behind")

	entries, readErr := os.ReadDir(filepath.Join(store.root, storage.BucketMaterials))
	require.NoError(t, readErr)
	assert.Empty(t, entries, "failed upload must not leave an object behind")
}

func TestMediaService_GetTask(t *testing.T) {
	svc, _, _ := newTestMediaService(t)

	teacher := models.Viewer{ID: 42, Role: models.RoleTeacher}
	task, err := svc.Upload(context.Background(), teacher, storage.BucketMaterials,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))
	require.NoError(t, err)

	got, err := svc.GetTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	_, err = svc.GetTask("no-such-task")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMediaService_GetFile(t *testing.T) {
	svc, _, _ := newTestMediaService(t)

	teacher := models.Viewer{ID: 42, Role: models.RoleTeacher}
	task, err := svc.Upload(context.Background(), teacher, storage.BucketMaterials,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))
	require.NoError(t, err)

	file, err := svc.GetFile(storage.BucketMaterials, task.ID)
	require.NoError(t, err)
	defer file.Close()

	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "lecture notes", string(data))
}

func TestMediaService_GetFile_NotFound(t *testing.T) {
	svc, _, _ := newTestMediaService(t)

	_, err := svc.GetFile(storage.BucketMaterials, "missing.pdf")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMediaService_OpenContent(t *testing.T) {
	svc, _, _ := newTestMediaService(t)

	teacher := models.Viewer{ID: 42, Role: models.RoleTeacher}
	task, err := svc.Upload(context.Background(), teacher, storage.BucketMaterials,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))
	require.NoError(t, err)

	rc, err := svc.OpenContent(storage.BucketMaterials, task.ID)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "lecture notes", string(data))
}

func TestMediaService_OpenContent_NotFound(t *testing.T) {
	svc, _, _ := newTestMediaService(t)

	_, err := svc.OpenContent(storage.BucketMaterials, "missing.pdf")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMediaService_DeleteFile(t *testing.T) {
	svc, store, repo := newTestMediaService(t)

	teacher := models.Viewer{ID: 42, Role: models.RoleTeacher}
	task, err := svc.Upload(context.Background(), teacher, storage.BucketMaterials,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))
	require.NoError(t, err)

	err = svc.DeleteFile(context.Background(), teacher, task.ID)

	require.NoError(t, err)
	assert.False(t, store.exists(storage.BucketMaterials, task.ID))
	assert.Empty(t, repo.records)
	assert.Empty(t, svc.ListTasks())
}

func TestMediaService_DeleteFile_OnlyUploader(t *testing.T) {
	svc, store, _ := newTestMediaService(t)

	uploader := models.Viewer{ID: 42, Role: models.RoleTeacher}
	task, err := svc.Upload(context.Background(), uploader, storage.BucketMaterials,
		"notes.pdf", "application/pdf", 13, strings.NewReader("lecture notes"))
	require.NoError(t, err)

	other := models.Viewer{ID: 43, Role: models.RoleTeacher}
	err = svc.DeleteFile(context.Background(), other, task.ID)

	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.True(t, store.exists(storage.BucketMaterials, task.ID))
}

func TestMediaService_DeleteFile_UnknownID(t *testing.T) {
	svc, _, _ := newTestMediaService(t)

	err := svc.DeleteFile(context.Background(), models.Viewer{ID: 42, Role: models.RoleTeacher}, "missing.pdf")

	assert.ErrorIs(t, err, models.ErrNotFound)
}
