package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub-ng/backend/internal/auth/middleware"
	"github.com/learnhub-ng/backend/internal/models"
	"go.uber.org/zap"
)

// StudentLessonService is the interface that wraps methods for reading lesson
// content as an enrolled student.
type StudentLessonService interface {
	// Method ListLessons retrieves the lessons of a course the viewer is
	// enrolled in, ordered by their position.
	ListLessons(ctx context.Context, courseID int, viewer models.Viewer) ([]models.LessonListItem, error)
	// Method GetLesson retrieves one lesson of a course the viewer is
	// enrolled in, with the quiz attached for quiz lessons.
	GetLesson(ctx context.Context, lessonID int, viewer models.Viewer) (*models.Lesson, error)
}

// StudentLessonHandler handles HTTP requests for the lesson viewer
type StudentLessonHandler struct {
	BaseHandler
	lessonService StudentLessonService
	authMw        func(http.Handler) http.Handler
}

// NewStudentLessonHandler creates a new student lesson handler
func NewStudentLessonHandler(lessonService StudentLessonService, logger *zap.Logger, authMw func(http.Handler) http.Handler) *StudentLessonHandler {
	return &StudentLessonHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		lessonService: lessonService,
		authMw:        authMw,
	}
}

// RegisterRoutes registers all student lesson handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *StudentLessonHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.authMw)
		r.Get("/learn/courses/{id}/lessons", h.ListLessons)
		r.Get("/learn/lessons/{id}", h.GetLesson)
	})
}

// ListLessons handles GET /learn/courses/{id}/lessons
// @Summary List lessons for learning
// @Description Get the ordered lesson list of a course the viewer is enrolled in
// @Tags learn
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} models.LessonListItem "List of lessons"
// @Failure 403 {object} map[string]string "Not enrolled in this course"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /learn/courses/{id}/lessons [get]
func (h *StudentLessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	lessons, err := h.lessonService.ListLessons(r.Context(), courseID, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to list lessons")
		return
	}

	h.RespondJSON(w, http.StatusOK, lessons)
}

// GetLesson handles GET /learn/lessons/{id}
// @Summary Get a lesson for learning
// @Description Get one lesson of a course the viewer is enrolled in. Quiz lessons include the quiz with its questions.
// @Tags learn
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson "Lesson"
// @Failure 403 {object} map[string]string "Not enrolled in this course"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /learn/lessons/{id} [get]
func (h *StudentLessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	lesson, err := h.lessonService.GetLesson(r.Context(), lessonID, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to get lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}
