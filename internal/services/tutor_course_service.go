package services

import (
	"context"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

// TutorCourseRepository defines methods for course data access used by teachers
type TutorCourseRepository interface {
	// Create creates a new course
	Create(ctx context.Context, course *models.Course) error
	// GetByID retrieves a course by its ID
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// ListByTeacher retrieves all courses owned by a teacher
	ListByTeacher(ctx context.Context, teacherID int) ([]models.Course, error)
	// Update updates a course (partial update)
	Update(ctx context.Context, id int, req *models.UpdateCourseRequest) error
	// SetPublished flips the published flag of a course
	SetPublished(ctx context.Context, id int, published bool) error
	// Delete deletes a course; lessons, quizzes and enrollments cascade
	Delete(ctx context.Context, id int) error
	// CheckOwnership checks if a course belongs to a teacher
	CheckOwnership(ctx context.Context, id, teacherID int) (bool, error)
}

type tutorCourseService struct {
	courseRepo TutorCourseRepository
}

// NewTutorCourseService creates a new tutor course service
func NewTutorCourseService(courseRepo TutorCourseRepository) *tutorCourseService {
	return &tutorCourseService{
		courseRepo: courseRepo,
	}
}

// validateCourseRequest checks the create request fields
func validateCourseRequest(req *models.CreateCourseRequest) error {
	if req.Title == "" {
		return models.Validation("title is required")
	}
	if req.Language == "" {
		return models.Validation("language is required")
	}
	if !req.Level.IsValid() {
		return models.Validation("level must be beginner, intermediate or advanced")
	}
	if req.DurationWeeks <= 0 {
		return models.Validation("duration must be at least one week")
	}
	if req.Price < 0 {
		return models.Validation("price must not be negative")
	}
	return nil
}

// CreateCourse creates an unpublished course owned by the viewer
func (s *tutorCourseService) CreateCourse(ctx context.Context, req *models.CreateCourseRequest, viewer models.Viewer) (*models.Course, error) {
	if err := validateCourseRequest(req); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:         req.Title,
		Description:   req.Description,
		Language:      req.Language,
		Level:         req.Level,
		DurationWeeks: req.DurationWeeks,
		Price:         req.Price,
		Published:     false,
		TeacherID:     viewer.ID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// ListOwnCourses retrieves the viewer's courses, including unpublished ones
func (s *tutorCourseService) ListOwnCourses(ctx context.Context, viewer models.Viewer) ([]models.Course, error) {
	courses, err := s.courseRepo.ListByTeacher(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	for i := range courses {
		courses[i].PriceDisplay = FormatPrice(courses[i].Price)
	}

	return courses, nil
}

// UpdateCourse applies a partial update to a course owned by the viewer
func (s *tutorCourseService) UpdateCourse(ctx context.Context, id int, req *models.UpdateCourseRequest, viewer models.Viewer) error {
	if req.Level != "" && !req.Level.IsValid() {
		return models.Validation("level must be beginner, intermediate or advanced")
	}
	if req.DurationWeeks != nil && *req.DurationWeeks <= 0 {
		return models.Validation("duration must be at least one week")
	}
	if req.Price != nil && *req.Price < 0 {
		return models.Validation("price must not be negative")
	}

	if err := s.checkOwnership(ctx, id, viewer); err != nil {
		return err
	}

	return s.courseRepo.Update(ctx, id, req)
}

// SetPublished publishes or unpublishes a course owned by the viewer
func (s *tutorCourseService) SetPublished(ctx context.Context, id int, published bool, viewer models.Viewer) error {
	if err := s.checkOwnership(ctx, id, viewer); err != nil {
		return err
	}

	return s.courseRepo.SetPublished(ctx, id, published)
}

// DeleteCourse deletes a course owned by the viewer
// Lessons, quizzes and enrollments cascade in the database
func (s *tutorCourseService) DeleteCourse(ctx context.Context, id int, viewer models.Viewer) error {
	if err := s.checkOwnership(ctx, id, viewer); err != nil {
		return err
	}

	return s.courseRepo.Delete(ctx, id)
}

// checkOwnership verifies the course exists and belongs to the viewer
func (s *tutorCourseService) checkOwnership(ctx context.Context, courseID int, viewer models.Viewer) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if course.TeacherID != viewer.ID {
		return models.Forbidden("you do not have rights to manage this course")
	}

	return nil
}
