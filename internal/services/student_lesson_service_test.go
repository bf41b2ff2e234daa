package services

import (
	"context"
	"testing"

	"github.com/learnhub-ng/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLearningFixtures() (*mockLessonRepository, *mockQuizRepository, *mockCourseReader, *mockEnrollmentRepository) {
	lessonRepo := &mockLessonRepository{
		items: []models.LessonListItem{
			{ID: 1, Title: "Greetings", Type: models.LessonTypeVideo, OrderIndex: 1},
			{ID: 2, Title: "Greetings check", Type: models.LessonTypeQuiz, OrderIndex: 2},
		},
	}
	quizRepo := &mockQuizRepository{}
	courseRepo := &mockCourseReader{
		course: &models.Course{ID: 5, Title: "Yoruba for Beginners", Published: true},
	}
	enrollmentRepo := &mockEnrollmentRepository{existsResult: true}
	return lessonRepo, quizRepo, courseRepo, enrollmentRepo
}

func TestStudentLessonService_ListLessons(t *testing.T) {
	lessonRepo, quizRepo, courseRepo, enrollmentRepo := newLearningFixtures()
	svc := NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)

	lessons, err := svc.ListLessons(context.Background(), 5, models.Viewer{ID: 42, Role: models.RoleStudent})
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "Greetings", lessons[0].Title)
	assert.Equal(t, "Greetings check", lessons[1].Title)
}

func TestStudentLessonService_ListLessons_NotEnrolled(t *testing.T) {
	lessonRepo, quizRepo, courseRepo, enrollmentRepo := newLearningFixtures()
	enrollmentRepo.existsResult = false
	svc := NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)

	_, err := svc.ListLessons(context.Background(), 5, models.Viewer{ID: 42, Role: models.RoleStudent})
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestStudentLessonService_ListLessons_UnpublishedCourse(t *testing.T) {
	lessonRepo, quizRepo, courseRepo, enrollmentRepo := newLearningFixtures()
	courseRepo.course.Published = false
	svc := NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)

	// The course must stay invisible even with a stale enrollment row
	_, err := svc.ListLessons(context.Background(), 5, models.Viewer{ID: 42, Role: models.RoleStudent})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStudentLessonService_GetLesson(t *testing.T) {
	lessonRepo, quizRepo, courseRepo, enrollmentRepo := newLearningFixtures()
	lessonRepo.lesson = &models.Lesson{
		ID:       1,
		CourseID: 5,
		Title:    "Greetings",
		Type:     models.LessonTypeText,
		Content:  "E kaaro means good morning.",
	}
	svc := NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)

	lesson, err := svc.GetLesson(context.Background(), 1, models.Viewer{ID: 42, Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, "Greetings", lesson.Title)
	assert.Nil(t, lesson.Quiz)
}

func TestStudentLessonService_GetLesson_AttachesQuiz(t *testing.T) {
	lessonRepo, quizRepo, courseRepo, enrollmentRepo := newLearningFixtures()
	lessonRepo.lesson = &models.Lesson{
		ID:       2,
		CourseID: 5,
		Title:    "Greetings check",
		Type:     models.LessonTypeQuiz,
	}
	quizRepo.quiz = &models.Quiz{ID: 3, LessonID: 2, Title: "Greetings check", PassingScore: 70}
	svc := NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)

	lesson, err := svc.GetLesson(context.Background(), 2, models.Viewer{ID: 42, Role: models.RoleStudent})
	require.NoError(t, err)
	require.NotNil(t, lesson.Quiz)
	assert.Equal(t, 70, lesson.Quiz.PassingScore)
}

func TestStudentLessonService_GetLesson_NotEnrolled(t *testing.T) {
	lessonRepo, quizRepo, courseRepo, enrollmentRepo := newLearningFixtures()
	lessonRepo.lesson = &models.Lesson{ID: 1, CourseID: 5, Title: "Greetings", Type: models.LessonTypeText}
	enrollmentRepo.existsResult = false
	svc := NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)

	// Teachers browse their own drafts through the authoring routes, so an
	// un-enrolled teacher is refused here like any other viewer
	_, err := svc.GetLesson(context.Background(), 1, models.Viewer{ID: 7, Role: models.RoleTeacher})
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestStudentLessonService_GetLesson_UnknownLesson(t *testing.T) {
	lessonRepo, quizRepo, courseRepo, enrollmentRepo := newLearningFixtures()
	lessonRepo.getErr = models.NotFound("lesson not found")
	svc := NewStudentLessonService(lessonRepo, quizRepo, courseRepo, enrollmentRepo)

	_, err := svc.GetLesson(context.Background(), 99, models.Viewer{ID: 42, Role: models.RoleStudent})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
