package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub-ng/backend/internal/auth/middleware"
	"github.com/learnhub-ng/backend/internal/models"
	"go.uber.org/zap"
)

// TutorLessonService is the interface that wraps methods for lesson authoring.
type TutorLessonService interface {
	// Method SaveLesson creates or updates a lesson from a single draft.
	// A draft with ID zero creates a new lesson appended to the course.
	SaveLesson(ctx context.Context, courseID int, draft *models.LessonDraft, viewer models.Viewer) (*models.Lesson, error)
	// Method GetLesson retrieves a lesson of a course owned by the viewer,
	// with the quiz attached for quiz lessons.
	GetLesson(ctx context.Context, lessonID int, viewer models.Viewer) (*models.Lesson, error)
	// Method ListLessons retrieves the lessons of a course owned by the viewer
	// in their authored order.
	ListLessons(ctx context.Context, courseID int, viewer models.Viewer) ([]models.LessonListItem, error)
	// Method DeleteLesson deletes a lesson and closes the gap in the order.
	DeleteLesson(ctx context.Context, lessonID int, viewer models.Viewer) error
	// Method ReorderLessons rewrites the lesson order of a course.
	ReorderLessons(ctx context.Context, courseID int, lessonIDs []int, viewer models.Viewer) error
}

// TutorLessonHandler handles HTTP requests for lesson authoring
type TutorLessonHandler struct {
	BaseHandler
	lessonService TutorLessonService
}

// NewTutorLessonHandler creates a new tutor lesson handler
func NewTutorLessonHandler(lessonService TutorLessonService, logger *zap.Logger) *TutorLessonHandler {
	return &TutorLessonHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		lessonService: lessonService,
	}
}

// RegisterRoutes registers all tutor lesson handler routes
// Note: This assumes the router is already scoped to signed-in teachers
func (h *TutorLessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses/{id}/lessons", func(r chi.Router) {
		r.Get("/", h.ListLessons)
		r.Post("/", h.CreateLesson)
		r.Put("/order", h.ReorderLessons)
		r.Put("/{lessonId}", h.UpdateLesson)
	})
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/{id}", h.GetLesson)
		r.Delete("/{id}", h.DeleteLesson)
	})
}

// ListLessons handles GET /courses/{id}/lessons
// @Summary List course lessons
// @Description Get the lessons of a course owned by the signed-in teacher in their authored order
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} models.LessonListItem "List of lessons"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/lessons [get]
func (h *TutorLessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
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

// CreateLesson handles POST /courses/{id}/lessons
// @Summary Create a lesson
// @Description Create a new lesson appended to a course owned by the signed-in teacher. The payload shape must match the lesson type.
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body models.LessonDraft true "Lesson draft"
// @Success 201 {object} models.Lesson "Created lesson"
// @Failure 400 {object} map[string]string "Invalid draft"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/lessons [post]
func (h *TutorLessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	var draft models.LessonDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft.ID = 0

	viewer := middleware.GetViewer(r.Context())

	lesson, err := h.lessonService.SaveLesson(r.Context(), courseID, &draft, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to create lesson")
		return
	}

	h.RespondJSON(w, http.StatusCreated, lesson)
}

// UpdateLesson handles PUT /courses/{id}/lessons/{lessonId}
// @Summary Update a lesson
// @Description Overwrite a lesson of a course owned by the signed-in teacher. Switching the lesson type clears the payload of the previous type.
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Param request body models.LessonDraft true "Lesson draft"
// @Success 200 {object} models.Lesson "Updated lesson"
// @Failure 400 {object} map[string]string "Invalid draft"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/lessons/{lessonId} [put]
func (h *TutorLessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	lessonID, err := strconv.Atoi(chi.URLParam(r, "lessonId"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	var draft models.LessonDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft.ID = lessonID

	viewer := middleware.GetViewer(r.Context())

	lesson, err := h.lessonService.SaveLesson(r.Context(), courseID, &draft, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to update lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}

// ReorderRequest represents a lesson reorder request
type ReorderRequest struct {
	LessonIDs []int `json:"lessonIds"`
}

// ReorderLessons handles PUT /courses/{id}/lessons/order
// @Summary Reorder course lessons
// @Description Rewrite the lesson order of a course owned by the signed-in teacher. The ID list must contain exactly the course's lessons.
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body ReorderRequest true "Reorder request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid lesson list"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/lessons/order [put]
func (h *TutorLessonHandler) ReorderLessons(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	if err := h.lessonService.ReorderLessons(r.Context(), courseID, req.LessonIDs, viewer); err != nil {
		h.RespondDomainError(w, err, "failed to reorder lessons")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLesson handles GET /lessons/{id}
// @Summary Get lesson details
// @Description Get a lesson of a course owned by the signed-in teacher, with the quiz attached for quiz lessons
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson "Lesson details"
// @Failure 400 {object} map[string]string "Invalid lesson ID"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [get]
func (h *TutorLessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
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

// DeleteLesson handles DELETE /lessons/{id}
// @Summary Delete a lesson
// @Description Delete a lesson of a course owned by the signed-in teacher. Remaining lessons close the gap in the order.
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid lesson ID"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [delete]
func (h *TutorLessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	if err := h.lessonService.DeleteLesson(r.Context(), lessonID, viewer); err != nil {
		h.RespondDomainError(w, err, "failed to delete lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
