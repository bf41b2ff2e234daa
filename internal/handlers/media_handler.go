package handlers

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub-ng/backend/internal/auth/middleware"
	"github.com/learnhub-ng/backend/internal/models"
	"github.com/learnhub-ng/backend/internal/storage"
	"go.uber.org/zap"
)

// MediaService is the interface that wraps methods for file uploads and downloads.
type MediaService interface {
	// Method Upload runs a tracked upload into the given bucket and records
	// its metadata. The call blocks until the transfer finishes.
	Upload(ctx context.Context, viewer models.Viewer, bucket, filename, contentType string, size int64, r io.Reader) (models.UploadTask, error)
	// Method GetTask returns the state of a tracked upload.
	GetTask(id string) (models.UploadTask, error)
	// Method ListTasks returns the state of all tracked uploads.
	ListTasks() []models.UploadTask
	// Method GetMetadata retrieves file metadata by ID.
	GetMetadata(ctx context.Context, id string) (*models.FileMetadata, error)
	// Method GetFile returns an *os.File for use with http.ServeContent.
	GetFile(bucket, id string) (*os.File, error)
	// Method OpenContent opens a stored object for plain sequential streaming.
	OpenContent(bucket, id string) (io.ReadCloser, error)
	// Method DeleteFile removes a stored object together with its metadata
	// record. Only the uploader may delete a file.
	DeleteFile(ctx context.Context, viewer models.Viewer, id string) error
}

// MediaHandler handles HTTP requests for media operations
type MediaHandler struct {
	BaseHandler
	mediaService MediaService
	authMw       func(http.Handler) http.Handler
	teacherMw    func(http.Handler) http.Handler
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService MediaService, logger *zap.Logger, authMw, teacherMw func(http.Handler) http.Handler) *MediaHandler {
	return &MediaHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		mediaService: mediaService,
		authMw:       authMw,
		teacherMw:    teacherMw,
	}
}

// RegisterRoutes registers all media handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Route("/media", func(r chi.Router) {
		// Download is public so lesson videos and materials can be streamed
		r.Get("/{bucket}/{filename}", h.DownloadFile)

		r.Group(func(r chi.Router) {
			r.Use(h.authMw, h.teacherMw)
			r.Post("/{bucket}", h.UploadFile)
			r.Delete("/{bucket}/{filename}", h.DeleteFile)
			r.Get("/tasks", h.ListTasks)
			r.Get("/tasks/{id}", h.GetTask)
		})
	})
}

// UploadFile handles POST /media/{bucket}
// @Summary Upload a file
// @Description Upload a video or course material. The transfer is tracked; the response carries the final task state with the retrievable URL. Size and file type limits depend on the bucket.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param bucket path string true "Bucket (video or materials)"
// @Param file formData file true "File to upload"
// @Success 201 {object} models.UploadTask "Completed upload task"
// @Failure 400 {object} map[string]string "Invalid bucket, size or file type"
// @Failure 403 {object} map[string]string "Teacher role required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /media/{bucket} [post]
func (h *MediaHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "multipart/") {
		contentType = "application/octet-stream"
	}

	viewer := middleware.GetViewer(r.Context())

	task, err := h.mediaService.Upload(r.Context(), viewer, bucket, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		h.RespondDomainError(w, err, "failed to upload file")
		return
	}

	h.RespondJSON(w, http.StatusCreated, task)
}

// DownloadFile handles GET /media/{bucket}/{filename}
// @Summary Download a file
// @Description Stream a stored file. Video downloads support range requests.
// @Tags media
// @Produce octet-stream
// @Param bucket path string true "Bucket (video or materials)"
// @Param filename path string true "File name"
// @Success 200 {file} file "File content"
// @Failure 400 {object} map[string]string "Invalid bucket"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /media/{bucket}/{filename} [get]
func (h *MediaHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	filename := chi.URLParam(r, "filename")

	if !storage.IsValidBucket(bucket) {
		h.RespondError(w, http.StatusBadRequest, "invalid bucket")
		return
	}

	metadata, err := h.mediaService.GetMetadata(r.Context(), filename)
	if err != nil {
		h.RespondDomainError(w, err, "failed to get file metadata")
		return
	}

	// Range support matters for video seeking
	if bucket == storage.BucketVideo {
		file, err := h.mediaService.GetFile(bucket, filename)
		if err != nil {
			h.RespondDomainError(w, err, "failed to open file")
			return
		}
		defer file.Close()

		fileInfo, err := file.Stat()
		if err != nil {
			h.Logger.Error("failed to get file info", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to get file info")
			return
		}

		http.ServeContent(w, r, filename, fileInfo.ModTime(), file)
		return
	}

	rc, err := h.mediaService.OpenContent(bucket, filename)
	if err != nil {
		h.RespondDomainError(w, err, "failed to open file")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", metadata.ContentType)
	if _, err := io.Copy(w, rc); err != nil {
		h.Logger.Error("failed to copy file to response", zap.Error(err))
	}
}

// DeleteFile handles DELETE /media/{bucket}/{filename}
// @Summary Delete a file
// @Description Delete a stored file and its metadata. Only the uploader may delete a file.
// @Tags media
// @Accept json
// @Produce json
// @Param bucket path string true "Bucket (video or materials)"
// @Param filename path string true "File name"
// @Success 204 "File and metadata deleted successfully"
// @Failure 403 {object} map[string]string "Not the uploader"
// @Failure 404 {object} map[string]string "File not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /media/{bucket}/{filename} [delete]
func (h *MediaHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	viewer := middleware.GetViewer(r.Context())

	if err := h.mediaService.DeleteFile(r.Context(), viewer, filename); err != nil {
		h.RespondDomainError(w, err, "failed to delete file")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTasks handles GET /media/tasks
// @Summary List upload tasks
// @Description Get the state of all tracked uploads
// @Tags media
// @Produce json
// @Success 200 {array} models.UploadTask "List of upload tasks"
// @Failure 403 {object} map[string]string "Teacher role required"
// @Router /media/tasks [get]
func (h *MediaHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.mediaService.ListTasks())
}

// GetTask handles GET /media/tasks/{id}
// @Summary Get an upload task
// @Description Get the state of one tracked upload
// @Tags media
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.UploadTask "Upload task"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /media/tasks/{id} [get]
func (h *MediaHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.mediaService.GetTask(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondDomainError(w, err, "failed to get upload task")
		return
	}

	h.RespondJSON(w, http.StatusOK, task)
}
