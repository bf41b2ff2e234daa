package uploads

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/learnhub-ng/backend/internal/models"
	"github.com/learnhub-ng/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStorage is an in-memory Storage for tests
type memoryStorage struct {
	objects   map[string]*bytes.Buffer
	createErr error
	writeErr  error
	deleted   []string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string]*bytes.Buffer)}
}

func (m *memoryStorage) Create(bucket, id string) (io.WriteCloser, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	buf := &bytes.Buffer{}
	m.objects[bucket+"/"+id] = buf
	return &memoryObject{buf: buf, writeErr: m.writeErr}, nil
}

func (m *memoryStorage) Delete(bucket, id string) error {
	m.deleted = append(m.deleted, bucket+"/"+id)
	delete(m.objects, bucket+"/"+id)
	return nil
}

type memoryObject struct {
	buf      *bytes.Buffer
	writeErr error
}

func (o *memoryObject) Write(p []byte) (int, error) {
	if o.writeErr != nil {
		return 0, o.writeErr
	}
	return o.buf.Write(p)
}

func (o *memoryObject) Close() error { return nil }

func testLimits() Limits {
	return Limits{
		MaxVideoSize: 500 << 20,
		MaxFileSize:  100 << 20,
	}
}

func newTestTracker(store Storage) *Tracker {
	return NewTracker(store, testLimits(), "http://localhost:8080", zap.NewNop())
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"lesson-1.mp4", KindVideo},
		{"intro.MOV", KindVideo},
		{"vocab.mp3", KindAudio},
		{"alphabet.png", KindImage},
		{"workbook.pdf", KindDocument},
		{"notes.txt", KindDocument},
		{"archive.zip", KindOther},
		{"noextension", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectKind(tt.filename))
		})
	}
}

func TestTracker_Validate(t *testing.T) {
	tracker := newTestTracker(newMemoryStorage())

	tests := []struct {
		name          string
		bucket        string
		filename      string
		size          int64
		errorContains string
	}{
		{
			name:     "video within limit",
			bucket:   storage.BucketVideo,
			filename: "lesson-1.mp4",
			size:     400 << 20,
		},
		{
			name:     "document within limit",
			bucket:   storage.BucketMaterials,
			filename: "workbook.pdf",
			size:     10 << 20,
		},
		{
			name:          "unknown bucket",
			bucket:        "thumbnails",
			filename:      "cover.png",
			size:          1 << 20,
			errorContains: "unknown bucket",
		},
		{
			name:          "material over the limit",
			bucket:        storage.BucketMaterials,
			filename:      "recordings.pdf",
			size:          150 << 20,
			errorContains: "exceeds the 100MB size limit",
		},
		{
			name:          "video over the limit",
			bucket:        storage.BucketVideo,
			filename:      "full-course.mp4",
			size:          501 << 20,
			errorContains: "exceeds the 500MB size limit",
		},
		{
			name:          "executable in materials",
			bucket:        storage.BucketMaterials,
			filename:      "setup.exe",
			size:          1 << 20,
			errorContains: "not accepted",
		},
		{
			name:          "document in video bucket",
			bucket:        storage.BucketVideo,
			filename:      "workbook.pdf",
			size:          1 << 20,
			errorContains: "not accepted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tracker.Validate(tt.bucket, tt.filename, tt.size)

			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestTracker_Run(t *testing.T) {
	store := newMemoryStorage()
	tracker := newTestTracker(store)

	content := strings.Repeat("a", 1024)
	var gotURL string
	var gotKind Kind
	calls := 0

	state, err := tracker.Run(storage.BucketMaterials, "workbook.pdf", int64(len(content)), strings.NewReader(content), func(url string, kind Kind) {
		calls++
		gotURL = url
		gotKind = kind
	})

	require.NoError(t, err)
	assert.Equal(t, models.UploadStatusCompleted, state.Status)
	assert.Equal(t, 100, state.Progress)
	assert.Equal(t, 1, calls, "completion callback must fire exactly once")
	assert.Equal(t, state.URL, gotURL)
	assert.Equal(t, KindDocument, gotKind)
	assert.Contains(t, gotURL, "/api/v1/media/materials/")

	stored, ok := store.objects[storage.BucketMaterials+"/"+state.ID]
	require.True(t, ok)
	assert.Equal(t, content, stored.String())
}

func TestTracker_Run_InvalidFileIsNotTracked(t *testing.T) {
	tracker := newTestTracker(newMemoryStorage())

	_, err := tracker.Run(storage.BucketMaterials, "setup.exe", 1024, strings.NewReader("x"), nil)

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, tracker.List())
}

func TestTracker_Run_WriteFailureDropsObject(t *testing.T) {
	store := newMemoryStorage()
	store.writeErr = errors.New("disk full")
	tracker := newTestTracker(store)

	called := false
	state, err := tracker.Run(storage.BucketMaterials, "workbook.pdf", 1024, strings.NewReader("abc"), func(string, Kind) {
		called = true
	})

	require.Error(t, err)
	assert.Equal(t, models.UploadStatusError, state.Status)
	assert.Contains(t, state.Error, "disk full")
	assert.False(t, called, "completion callback must not fire on failure")
	assert.Equal(t, []string{storage.BucketMaterials + "/" + state.ID}, store.deleted)

	// The failed task stays visible so the client can read the error
	got, ok := tracker.Get(state.ID)
	require.True(t, ok)
	assert.Equal(t, models.UploadStatusError, got.Status)
}

func TestTracker_Run_CreateFailure(t *testing.T) {
	store := newMemoryStorage()
	store.createErr = errors.New("permission denied")
	tracker := newTestTracker(store)

	state, err := tracker.Run(storage.BucketVideo, "lesson-1.mp4", 1024, strings.NewReader("abc"), nil)

	require.Error(t, err)
	assert.Equal(t, models.UploadStatusError, state.Status)
}

func TestTracker_GetListRemove(t *testing.T) {
	tracker := newTestTracker(newMemoryStorage())

	state, err := tracker.Run(storage.BucketMaterials, "notes.txt", 4, strings.NewReader("abcd"), nil)
	require.NoError(t, err)

	got, ok := tracker.Get(state.ID)
	require.True(t, ok)
	assert.Equal(t, "notes.txt", got.Filename)

	assert.Len(t, tracker.List(), 1)

	tracker.Remove(state.ID)

	_, ok = tracker.Get(state.ID)
	assert.False(t, ok)
	assert.Empty(t, tracker.List())
}

func TestTracker_Get_UnknownID(t *testing.T) {
	tracker := newTestTracker(newMemoryStorage())

	_, ok := tracker.Get("no-such-task")

	assert.False(t, ok)
}

func TestProgressReader_ReportsPercent(t *testing.T) {
	var reported []int
	pr := &progressReader{
		reader: strings.NewReader(strings.Repeat("a", 100)),
		total:  100,
		report: func(percent int) { reported = append(reported, percent) },
	}

	buf := make([]byte, 40)
	for {
		if _, err := pr.Read(buf); err != nil {
			break
		}
	}

	require.NotEmpty(t, reported)
	assert.Equal(t, 100, reported[len(reported)-1])
	for i := 1; i < len(reported); i++ {
		assert.GreaterOrEqual(t, reported[i], reported[i-1])
	}
}
