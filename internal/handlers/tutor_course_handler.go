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

// TutorCourseService is the interface that wraps methods for course management.
type TutorCourseService interface {
	// Method CreateCourse creates an unpublished course owned by the viewer.
	CreateCourse(ctx context.Context, req *models.CreateCourseRequest, viewer models.Viewer) (*models.Course, error)
	// Method ListOwnCourses returns the viewer's courses, published or not.
	ListOwnCourses(ctx context.Context, viewer models.Viewer) ([]models.Course, error)
	// Method UpdateCourse applies a partial update to a course owned by the viewer.
	UpdateCourse(ctx context.Context, id int, req *models.UpdateCourseRequest, viewer models.Viewer) error
	// Method SetPublished publishes or unpublishes a course owned by the viewer.
	SetPublished(ctx context.Context, id int, published bool, viewer models.Viewer) error
	// Method DeleteCourse deletes a course owned by the viewer together with
	// its lessons and enrollments.
	DeleteCourse(ctx context.Context, id int, viewer models.Viewer) error
}

// TutorCourseHandler handles HTTP requests for teacher course management
type TutorCourseHandler struct {
	BaseHandler
	courseService TutorCourseService
}

// NewTutorCourseHandler creates a new tutor course handler
func NewTutorCourseHandler(courseService TutorCourseService, logger *zap.Logger) *TutorCourseHandler {
	return &TutorCourseHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		courseService: courseService,
	}
}

// RegisterRoutes registers all tutor course handler routes
// Note: This assumes the router is already scoped to signed-in teachers
func (h *TutorCourseHandler) RegisterRoutes(r chi.Router) {
	r.Post("/courses", h.CreateCourse)
	r.Get("/my/teaching", h.ListOwnCourses)
	r.Patch("/courses/{id}", h.UpdateCourse)
	r.Post("/courses/{id}/publish", h.Publish)
	r.Delete("/courses/{id}", h.DeleteCourse)
}

// CreateCourse handles POST /courses
// @Summary Create a course
// @Description Create a new unpublished course owned by the signed-in teacher
// @Tags teaching
// @Accept json
// @Produce json
// @Param request body models.CreateCourseRequest true "Course creation request"
// @Success 201 {object} models.Course "Created course"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Teacher role required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [post]
func (h *TutorCourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	course, err := h.courseService.CreateCourse(r.Context(), &req, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to create course")
		return
	}

	h.RespondJSON(w, http.StatusCreated, course)
}

// ListOwnCourses handles GET /my/teaching
// @Summary List own courses
// @Description Get the signed-in teacher's courses, published or not
// @Tags teaching
// @Accept json
// @Produce json
// @Success 200 {array} models.Course "List of courses"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /my/teaching [get]
func (h *TutorCourseHandler) ListOwnCourses(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetViewer(r.Context())

	courses, err := h.courseService.ListOwnCourses(r.Context(), viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to list courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// UpdateCourse handles PATCH /courses/{id}
// @Summary Update a course
// @Description Apply a partial update to a course owned by the signed-in teacher
// @Tags teaching
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body models.UpdateCourseRequest true "Course update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id} [patch]
func (h *TutorCourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	var req models.UpdateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	if err := h.courseService.UpdateCourse(r.Context(), courseID, &req, viewer); err != nil {
		h.RespondDomainError(w, err, "failed to update course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PublishRequest represents a publish toggle request
type PublishRequest struct {
	Published bool `json:"published"`
}

// Publish handles POST /courses/{id}/publish
// @Summary Publish or unpublish a course
// @Description Toggle the published flag of a course owned by the signed-in teacher. Only published courses appear in the catalog.
// @Tags teaching
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body PublishRequest true "Publish request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id}/publish [post]
func (h *TutorCourseHandler) Publish(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	if err := h.courseService.SetPublished(r.Context(), courseID, req.Published, viewer); err != nil {
		h.RespondDomainError(w, err, "failed to publish course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCourse handles DELETE /courses/{id}
// @Summary Delete a course
// @Description Delete a course owned by the signed-in teacher together with its lessons and enrollments
// @Tags teaching
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 403 {object} map[string]string "Not the course owner"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id} [delete]
func (h *TutorCourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	if err := h.courseService.DeleteCourse(r.Context(), courseID, viewer); err != nil {
		h.RespondDomainError(w, err, "failed to delete course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
