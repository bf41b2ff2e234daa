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

// CatalogService is the interface that wraps methods for browsing published courses.
type CatalogService interface {
	// Method ListCatalog returns the published courses matching the query,
	// filtered and sorted.
	ListCatalog(ctx context.Context, query models.CatalogQuery) ([]models.Course, error)
	// Method GetCourse returns a single course. Unpublished courses are only
	// visible to their owner.
	GetCourse(ctx context.Context, id int, viewer models.Viewer) (*models.Course, error)
}

// CatalogHandler handles HTTP requests for course browsing
type CatalogHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		catalogService: catalogService,
	}
}

// RegisterRoutes registers all catalog handler routes
// Note: This assumes the router is already scoped to /api/v1 with optional auth
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.ListCourses)
	r.Get("/courses/{id}", h.GetCourse)
}

// ListCourses handles GET /courses
// @Summary Browse the course catalog
// @Description Get published courses with optional search, language and level filters, sorted by the given key
// @Tags catalog
// @Accept json
// @Produce json
// @Param search query string false "Search in title, instructor and language"
// @Param language query string false "Filter by language"
// @Param level query string false "Filter by level (beginner, intermediate, advanced)"
// @Param sort query string false "Sort key (popular, rating, newest, price-low, price-high; default: popular)"
// @Success 200 {array} models.Course "List of courses"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	query := models.CatalogQuery{
		Search:   r.URL.Query().Get("search"),
		Language: r.URL.Query().Get("language"),
		Level:    r.URL.Query().Get("level"),
		Sort:     models.SortKey(r.URL.Query().Get("sort")),
	}
	if query.Sort == "" {
		query.Sort = models.SortPopular
	}

	courses, err := h.catalogService.ListCatalog(r.Context(), query)
	if err != nil {
		h.RespondDomainError(w, err, "failed to list courses")
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /courses/{id}
// @Summary Get course details
// @Description Get a single course. Unpublished courses are only visible to their owner.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course "Course details"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /courses/{id} [get]
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	viewer := middleware.GetViewer(r.Context())

	course, err := h.catalogService.GetCourse(r.Context(), courseID, viewer)
	if err != nil {
		h.RespondDomainError(w, err, "failed to get course")
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}
