package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

// EnrollmentRepository defines methods for enrollment data access
type EnrollmentRepository interface {
	// Create inserts a new enrollment row; a duplicate (course, student)
	// pair yields a conflict error
	Create(ctx context.Context, enrollment *models.Enrollment) error
	// Get retrieves the enrollment for a (course, student) pair
	Get(ctx context.Context, courseID, studentID int) (*models.Enrollment, error)
	// Exists checks if an enrollment exists for a (course, student) pair
	Exists(ctx context.Context, courseID, studentID int) (bool, error)
	// UpdateProgress stores the progress of an enrollment; the completion
	// timestamp is written only the first time progress reaches 100
	UpdateProgress(ctx context.Context, courseID, studentID, progress int) error
	// CountByCourse counts the enrollments of a course
	CountByCourse(ctx context.Context, courseID int) (int, error)
	// ListByStudent retrieves the student's enrolled courses with progress
	ListByStudent(ctx context.Context, studentID int) ([]models.EnrolledCourse, error)
}

type enrollmentService struct {
	enrollmentRepo EnrollmentRepository
	courseRepo     CatalogCourseRepository
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollmentRepo EnrollmentRepository, courseRepo CatalogCourseRepository) *enrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
	}
}

// ResolveAction decides what the enroll control does for the viewer:
// anonymous viewers are asked to sign in, the owning teacher manages the
// course, other teachers get nothing, and students see enroll, continue or
// completed depending on their enrollment state.
func (s *enrollmentService) ResolveAction(ctx context.Context, courseID int, viewer models.Viewer) (models.EnrollAction, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return "", err
	}

	if viewer.IsAnonymous() {
		return models.ActionSignIn, nil
	}

	if viewer.Role == models.RoleTeacher {
		if course.TeacherID == viewer.ID {
			return models.ActionManage, nil
		}
		return models.ActionNone, nil
	}

	enrollment, err := s.enrollmentRepo.Get(ctx, courseID, viewer.ID)
	if errors.Is(err, models.ErrNotFound) {
		return models.ActionEnroll, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get enrollment: %w", err)
	}

	if enrollment.CompletedAt != nil {
		return models.ActionCompleted, nil
	}
	return models.ActionContinue, nil
}

// Enroll creates an enrollment with zero progress and returns the updated
// enrollment count of the course.
//
// Guards: the course must be published, the viewer must be a student, and no
// enrollment may exist yet for the (course, viewer) pair. A duplicate attempt
// is answered with a conflict, never a second row.
func (s *enrollmentService) Enroll(ctx context.Context, courseID int, viewer models.Viewer) (int, error) {
	if viewer.Role != models.RoleStudent {
		return 0, models.Forbidden("only students can enroll in courses")
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return 0, err
	}
	if !course.Published {
		return 0, models.NotFound("course not found")
	}

	exists, err := s.enrollmentRepo.Exists(ctx, courseID, viewer.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to check enrollment existence: %w", err)
	}
	if exists {
		return 0, models.Conflict("already enrolled in this course")
	}

	enrollment := &models.Enrollment{
		CourseID:  courseID,
		StudentID: viewer.ID,
		Progress:  0,
	}
	// The composite key catches the race where two enroll attempts pass the
	// existence check together
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return 0, err
	}

	count, err := s.enrollmentRepo.CountByCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}

	return count, nil
}

// UpdateProgress records the student's progress in a course, clamped to
// 0-100. The completion timestamp is set exactly once when progress first
// reaches 100; later updates never change it.
func (s *enrollmentService) UpdateProgress(ctx context.Context, courseID int, viewer models.Viewer, progress int) (*models.Enrollment, error) {
	if viewer.Role != models.RoleStudent {
		return nil, models.Forbidden("only students can record progress")
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	if err := s.enrollmentRepo.UpdateProgress(ctx, courseID, viewer.ID, progress); err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.Get(ctx, courseID, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return enrollment, nil
}

// ListMyCourses retrieves the viewer's enrolled courses with progress
func (s *enrollmentService) ListMyCourses(ctx context.Context, viewer models.Viewer) ([]models.EnrolledCourse, error) {
	enrolled, err := s.enrollmentRepo.ListByStudent(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled courses: %w", err)
	}

	for i := range enrolled {
		enrolled[i].Course.PriceDisplay = FormatPrice(enrolled[i].Course.Price)
	}

	return enrolled, nil
}
