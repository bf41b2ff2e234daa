package models

import "time"

// UploadStatus represents the state of an upload task
type UploadStatus string

// Upload task states
const (
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusCompleted UploadStatus = "completed"
	UploadStatusError     UploadStatus = "error"
)

// UploadTask tracks a single file transfer into object storage
type UploadTask struct {
	ID       string       `json:"id"`
	Filename string       `json:"filename"`
	Bucket   string       `json:"bucket"`
	Size     int64        `json:"size"`
	Progress int          `json:"progress"` // percentage, 0-100
	Status   UploadStatus `json:"status"`
	URL      string       `json:"url,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// FileMetadata represents a stored file record
type FileMetadata struct {
	ID          string    `json:"id"`
	Bucket      string    `json:"bucket"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	UploadedBy  int       `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
