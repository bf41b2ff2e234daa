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

// EnrollmentService is the interface that wraps methods for student enrollment.
type EnrollmentService interface {
	// Method ResolveAction returns the action the enroll control should offer
	// the viewer for the given course.
	ResolveAction(ctx context.Context, courseID int, viewer models.Viewer) (models.EnrollAction, error)
	// Method Enroll enrolls the viewer into a published course and returns the
	// updated student count. Double enrollment is a conflict.
	Enroll(ctx context.Context, courseID int, viewer models.Viewer) (int, error)
	// Method UpdateProgress sets the viewer's progress on an enrolled course
	// and returns the refreshed enrollment.
	UpdateProgress(ctx context.Context, courseID int, viewer models.Viewer, progress int) (*models.Enrollment, error)
	// Method ListMyCourses returns the courses the viewer is enrolled in.
	ListMyCourses(ctx context.Context, viewer models.Viewer) ([]models.EnrolledCourse, error)
}

// EnrollmentHandler handles HTTP requests for enrollment operations
type EnrollmentHandler struct {
	BaseHandler
	enrollmentService EnrollmentService
	authMw            func(http.Handler) http.Handler
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(enrollmentService EnrollmentService, logger *zap.Logger, authMw func(http.Handler) http.Handler) *EnrollmentHandler {
	return &EnrollmentHandler{
		BaseHandler:       BaseHandler{Logger: logger},
		enrollmentService: enrollmentService,
		authMw:            authMw,
	}
}

// RegisterRoutes registers all enrollment handler routes
// Note: This assumes the router is already scoped to /api/v1 with optional auth
func (h *EnrollmentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses/{id}/action", h.GetAction)

	r.Group(func(r chi.Router) {
		r.Use(h.authMw)
		r.Post("/courses/{id}/enroll", h.Enroll)
		r.Put("/courses/{id}/progress", h.UpdateProgress)
		r.Get("/my/courses", h.ListMyCourses)
	})
}

// GetAction handles GET /courses/{id}/action
// @Summary Resolve the enroll control action
// @Description Get the action the enroll control should offer the viewer: sign-in, enroll, continue, completed, manage or none
// @Tags enrollment
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]string "Resolved action"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/action [get]
func (h *EnrollmentHandler) GetAction(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	action, err := h.enrollmentService.ResolveAction(r.Context(), courseID, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to resolve action")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"action": string(action)})
}

// Enroll handles POST /courses/{id}/enroll
// @Summary Enroll in a course
// @Description Enroll the signed-in student into a published course
// @Tags enrollment
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 201 {object} map[string]any "Enrolled successfully, returns updated student count"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 403 {object} map[string]string "Only students can enroll"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 409 {object} map[string]string "Already enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/enroll [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	studentCount, err := h.enrollmentService.Enroll(r.Context(), courseID, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to enroll")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message":      "enrolled successfully",
		"studentCount": studentCount,
	})
}

// UpdateProgressRequest represents a progress update request
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

// UpdateProgress handles PUT /courses/{id}/progress
// @Summary Update course progress
// @Description Set the signed-in student's progress on an enrolled course. Reaching 100 marks the course completed.
// @Tags enrollment
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body UpdateProgressRequest true "Progress update request"
// @Success 200 {object} models.Enrollment "Updated enrollment"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Enrollment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id}/progress [put]
func (h *EnrollmentHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	enrollment, err := h.enrollmentService.UpdateProgress(r.Context(), courseID, viewer, req.Progress)
	if err != nil {
		h.RespondDomainError(w, err, "failed to update progress")
		return
	}

	h.RespondJSON(w, http.StatusOK, enrollment)
}

// ListMyCourses handles GET /my/courses
// @Summary List enrolled courses
// @Description Get the courses the signed-in student is enrolled in, most recent enrollment first
// @Tags enrollment
// @Accept json
// @Produce json
// @Success 200 {array} models.EnrolledCourse "List of enrolled courses"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /my/courses [get]
func (h *EnrollmentHandler) ListMyCourses(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetViewer(r.Context())

	courses, err := h.enrollmentService.ListMyCourses(r.Context(), viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to list enrolled courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}
