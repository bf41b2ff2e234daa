package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

// studentLessonService serves lesson content to enrolled students
type studentLessonService struct {
	lessonRepo     LessonRepository
	quizRepo       QuizRepository
	courseRepo     CatalogCourseRepository
	enrollmentRepo EnrollmentRepository
}

// NewStudentLessonService creates a new student lesson service
func NewStudentLessonService(lessonRepo LessonRepository, quizRepo QuizRepository, courseRepo CatalogCourseRepository, enrollmentRepo EnrollmentRepository) *studentLessonService {
	return &studentLessonService{
		lessonRepo:     lessonRepo,
		quizRepo:       quizRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// ListLessons retrieves the lessons of a course the viewer is enrolled in
func (s *studentLessonService) ListLessons(ctx context.Context, courseID int, viewer models.Viewer) ([]models.LessonListItem, error) {
	if err := s.checkAccess(ctx, courseID, viewer); err != nil {
		return nil, err
	}

	return s.lessonRepo.ListByCourse(ctx, courseID)
}

// GetLesson retrieves one lesson of a course the viewer is enrolled in,
// with the quiz attached for quiz lessons
func (s *studentLessonService) GetLesson(ctx context.Context, lessonID int, viewer models.Viewer) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(ctx, lesson.CourseID, viewer); err != nil {
		return nil, err
	}

	if lesson.Type == models.LessonTypeQuiz {
		quiz, err := s.quizRepo.GetByLessonID(ctx, lessonID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		lesson.Quiz = quiz
	}

	return lesson, nil
}

// checkAccess verifies the course is published and the viewer is enrolled in it
// An unpublished course is invisible, not forbidden
func (s *studentLessonService) checkAccess(ctx context.Context, courseID int, viewer models.Viewer) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if !course.Published {
		return models.NotFound("course not found")
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, courseID, viewer.ID)
	if err != nil {
		return fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return models.Forbidden("enroll in this course to view its lessons")
	}

	return nil
}
