// Package uploads tracks file transfers into object storage.
// Each upload is an independent task: validation happens before a task is
// registered, and the failure of one task never affects another.
package uploads

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/learnhub-ng/backend/internal/models"
	"github.com/learnhub-ng/backend/internal/storage"
	"go.uber.org/zap"
)

// Kind is the coarse file kind detected from the filename extension
type Kind string

// Detected file kinds
const (
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindImage    Kind = "image"
	KindDocument Kind = "document"
	KindOther    Kind = "other"
)

// DetectKind maps a filename extension to a file kind
func DetectKind(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp4", ".webm", ".mov":
		return KindVideo
	case ".mp3", ".wav", ".ogg":
		return KindAudio
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return KindImage
	case ".pdf", ".doc", ".docx", ".ppt", ".pptx", ".txt":
		return KindDocument
	default:
		return KindOther
	}
}

// bucketExtensions lists the accepted filename extensions per bucket
var bucketExtensions = map[string]map[string]bool{
	storage.BucketVideo: {
		".mp4": true, ".webm": true, ".mov": true,
	},
	storage.BucketMaterials: {
		".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
		".txt": true, ".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
		".webp": true, ".mp3": true, ".wav": true, ".ogg": true,
	},
}

// Limits holds the per-bucket size limits for upload validation
type Limits struct {
	MaxVideoSize int64
	MaxFileSize  int64
}

// maxSize returns the size limit for a bucket
func (l Limits) maxSize(bucket string) int64 {
	if bucket == storage.BucketVideo {
		return l.MaxVideoSize
	}
	return l.MaxFileSize
}

// Storage is the subset of the object store the tracker writes to
type Storage interface {
	Create(bucket, id string) (io.WriteCloser, error)
	Delete(bucket, id string) error
}

// CompletionFunc is invoked exactly once per successfully uploaded file
type CompletionFunc func(url string, kind Kind)

// task is the tracker-internal state of one upload
type task struct {
	state models.UploadTask
	once  sync.Once
}

// Tracker manages concurrent, mutually independent upload tasks
type Tracker struct {
	mu      sync.Mutex
	tasks   map[string]*task
	storage Storage
	limits  Limits
	baseURL string
	logger  *zap.Logger
}

// NewTracker creates a new upload tracker
func NewTracker(store Storage, limits Limits, baseURL string, logger *zap.Logger) *Tracker {
	return &Tracker{
		tasks:   make(map[string]*task),
		storage: store,
		limits:  limits,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Validate checks a file against the bucket's size limit and accepted
// extension set. A violation is reported as a validation error with a
// descriptive reason; the file is never enqueued.
func (t *Tracker) Validate(bucket, filename string, size int64) error {
	if !storage.IsValidBucket(bucket) {
		return models.Validation(fmt.Sprintf("unknown bucket %q", bucket))
	}

	maxSize := t.limits.maxSize(bucket)
	if size > maxSize {
		return models.Validation(fmt.Sprintf("file %q exceeds the %dMB size limit", filename, maxSize>>20))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !bucketExtensions[bucket][ext] {
		return models.Validation(fmt.Sprintf("file type %q is not accepted for bucket %q", ext, bucket))
	}

	return nil
}

// Run validates and executes one upload, tracking its state for the whole
// transfer. The object name is generated from the original extension. On
// success the completion callback is invoked exactly once with the
// retrievable URL and detected file kind.
//
// Run blocks until the transfer finishes; concurrent uploads are concurrent
// Run calls, each owning its task's progress record exclusively.
func (t *Tracker) Run(bucket, filename string, size int64, r io.Reader, onComplete CompletionFunc) (models.UploadTask, error) {
	if err := t.Validate(bucket, filename, size); err != nil {
		return models.UploadTask{}, err
	}

	objectName := storage.GenerateFileName(filepath.Ext(filename))
	tk := &task{
		state: models.UploadTask{
			ID:       objectName,
			Filename: filename,
			Bucket:   bucket,
			Size:     size,
			Status:   models.UploadStatusUploading,
		},
	}

	t.mu.Lock()
	t.tasks[objectName] = tk
	t.mu.Unlock()

	url, err := t.transfer(tk, bucket, objectName, size, r)
	if err != nil {
		t.setError(tk, err)
		return t.snapshot(tk), err
	}

	t.mu.Lock()
	tk.state.Status = models.UploadStatusCompleted
	tk.state.Progress = 100
	tk.state.URL = url
	t.mu.Unlock()

	if onComplete != nil {
		tk.once.Do(func() {
			onComplete(url, DetectKind(filename))
		})
	}

	return t.snapshot(tk), nil
}

// transfer copies the file into storage, updating task progress as bytes move
func (t *Tracker) transfer(tk *task, bucket, objectName string, size int64, r io.Reader) (string, error) {
	w, err := t.storage.Create(bucket, objectName)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}

	pr := &progressReader{reader: r, total: size, report: func(percent int) {
		t.mu.Lock()
		tk.state.Progress = percent
		t.mu.Unlock()
	}}

	_, err = io.Copy(w, pr)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Partial object is useless, drop it
		t.storage.Delete(bucket, objectName)
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	return fmt.Sprintf("%s/api/v1/media/%s/%s", t.baseURL, bucket, objectName), nil
}

// setError records a failed transfer on the task
func (t *Tracker) setError(tk *task, err error) {
	t.mu.Lock()
	tk.state.Status = models.UploadStatusError
	tk.state.Error = err.Error()
	t.mu.Unlock()

	t.logger.Error("upload failed",
		zap.String("task_id", tk.state.ID),
		zap.String("filename", tk.state.Filename),
		zap.Error(err),
	)
}

// snapshot copies the current state of a task under the lock
func (t *Tracker) snapshot(tk *task) models.UploadTask {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tk.state
}

// Get returns the state of a tracked upload
func (t *Tracker) Get(id string) (models.UploadTask, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tk, ok := t.tasks[id]
	if !ok {
		return models.UploadTask{}, false
	}
	return tk.state, true
}

// List returns the state of all tracked uploads
func (t *Tracker) List() []models.UploadTask {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := make([]models.UploadTask, 0, len(t.tasks))
	for _, tk := range t.tasks {
		list = append(list, tk.state)
	}
	return list
}

// Remove drops a tracked upload, releasing its record. The stored object is
// not touched; its lifecycle belongs to the media service.
func (t *Tracker) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tasks, id)
}

// progressReader reports copy progress as a percentage of the expected size
type progressReader struct {
	reader io.Reader
	total  int64
	read   int64
	report func(percent int)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.read += int64(n)

	if pr.total > 0 && pr.report != nil {
		percent := int(pr.read * 100 / pr.total)
		if percent > 100 {
			percent = 100
		}
		pr.report(percent)
	}

	return n, err
}
