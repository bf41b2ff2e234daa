package services

import (
	"context"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

// CatalogCourseRepository defines the course reads the catalog needs
type CatalogCourseRepository interface {
	// ListPublished retrieves all published courses, newest first
	ListPublished(ctx context.Context) ([]models.Course, error)
	// GetByID retrieves a course by its ID
	GetByID(ctx context.Context, id int) (*models.Course, error)
}

type catalogService struct {
	courseRepo CatalogCourseRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courseRepo CatalogCourseRepository) *catalogService {
	return &catalogService{
		courseRepo: courseRepo,
	}
}

// ListCatalog retrieves the published courses matching the query, filtered
// and ordered by the pure pipeline. An empty result stays empty; no fallback
// data is ever substituted.
func (s *catalogService) ListCatalog(ctx context.Context, query models.CatalogQuery) ([]models.Course, error) {
	courses, err := s.courseRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	for i := range courses {
		courses[i].PriceDisplay = FormatPrice(courses[i].Price)
	}

	filtered := FilterCourses(courses, query.Search, query.Language, query.Level)
	return SortCourses(filtered, query.Sort), nil
}

// GetCourse retrieves one course for the detail page. Unpublished courses are
// visible to their owning teacher only.
func (s *catalogService) GetCourse(ctx context.Context, id int, viewer models.Viewer) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !course.Published && course.TeacherID != viewer.ID {
		return nil, models.NotFound("course not found")
	}

	course.PriceDisplay = FormatPrice(course.Price)
	return course, nil
}
