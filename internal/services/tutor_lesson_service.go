package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson by its ID
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// ListByCourse retrieves a course's lessons ordered by order index
	ListByCourse(ctx context.Context, courseID int) ([]models.LessonListItem, error)
	// NextOrderIndex returns the order index for an appended lesson
	NextOrderIndex(ctx context.Context, courseID int) (int, error)
	// Create creates a new lesson
	Create(ctx context.Context, lesson *models.Lesson) error
	// Update overwrites the editable fields of a lesson
	Update(ctx context.Context, lesson *models.Lesson) error
	// Delete deletes a lesson and compacts the remaining order indexes
	Delete(ctx context.Context, id int) error
	// Reorder rewrites the order indexes to match the given lesson sequence
	Reorder(ctx context.Context, courseID int, lessonIDs []int) error
}

// QuizRepository defines methods for quiz data access
type QuizRepository interface {
	// GetByLessonID retrieves a quiz with its questions for a lesson
	GetByLessonID(ctx context.Context, lessonID int) (*models.Quiz, error)
	// Replace overwrites the quiz of a lesson with the given draft
	Replace(ctx context.Context, lessonID int, draft *models.QuizDraft) error
	// DeleteByLessonID deletes the quiz of a lesson, if any
	DeleteByLessonID(ctx context.Context, lessonID int) error
}

type tutorLessonService struct {
	lessonRepo LessonRepository
	quizRepo   QuizRepository
	courseRepo TutorCourseRepository
}

// NewTutorLessonService creates a new tutor lesson service
func NewTutorLessonService(lessonRepo LessonRepository, quizRepo QuizRepository, courseRepo TutorCourseRepository) *tutorLessonService {
	return &tutorLessonService{
		lessonRepo: lessonRepo,
		quizRepo:   quizRepo,
		courseRepo: courseRepo,
	}
}

// NormalizeDraft clears payload fields that do not belong to the draft's
// type, mirroring how the authoring form resets fields when the lesson type
// is switched.
func NormalizeDraft(draft *models.LessonDraft) {
	if draft.Type != models.LessonTypeVideo {
		draft.VideoURL = ""
		draft.VideoDuration = 0
	}
	if draft.Type != models.LessonTypeText {
		draft.Content = ""
	}
	if draft.Type != models.LessonTypeQuiz {
		draft.Quiz = nil
	}
}

// ValidateDraft checks a lesson draft before anything is written. Violations
// are validation errors with an inline message; no repository call happens
// for an invalid draft.
func ValidateDraft(draft *models.LessonDraft) error {
	if draft.Title == "" {
		return models.Validation("title is required")
	}
	if !draft.Type.IsValid() {
		return models.Validation("type must be video, text or quiz")
	}

	switch draft.Type {
	case models.LessonTypeVideo:
		if draft.VideoURL == "" {
			return models.Validation("video lessons need a video URL")
		}
	case models.LessonTypeText:
		if draft.Content == "" {
			return models.Validation("text lessons need content")
		}
	case models.LessonTypeQuiz:
		if draft.Quiz == nil || len(draft.Quiz.Questions) == 0 {
			return models.Validation("quiz lessons need at least one question")
		}
		if draft.Quiz.PassingScore < 0 || draft.Quiz.PassingScore > 100 {
			return models.Validation("passing score must be between 0 and 100")
		}
		if draft.Quiz.TimeLimitMinutes < 0 {
			return models.Validation("time limit must not be negative")
		}
		for i, q := range draft.Quiz.Questions {
			if q.Prompt == "" {
				return models.Validation(fmt.Sprintf("question %d needs a prompt", i+1))
			}
			if len(q.Options) != models.QuestionOptionCount {
				return models.Validation(fmt.Sprintf("question %d needs exactly %d options", i+1, models.QuestionOptionCount))
			}
			for _, option := range q.Options {
				if option == "" {
					return models.Validation(fmt.Sprintf("question %d has an empty option", i+1))
				}
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= models.QuestionOptionCount {
				return models.Validation(fmt.Sprintf("question %d has an invalid correct option", i+1))
			}
		}
	}

	return nil
}

// SaveLesson creates or updates a lesson from a single draft. The draft is
// normalized and validated first; on a repository error nothing is reset and
// the error is surfaced to the caller as-is.
func (s *tutorLessonService) SaveLesson(ctx context.Context, courseID int, draft *models.LessonDraft, viewer models.Viewer) (*models.Lesson, error) {
	NormalizeDraft(draft)
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	if err := s.checkCourseOwnership(ctx, courseID, viewer); err != nil {
		return nil, err
	}

	if draft.ID == 0 {
		return s.createLesson(ctx, courseID, draft)
	}
	return s.updateLesson(ctx, courseID, draft)
}

// createLesson appends a new lesson to the course
func (s *tutorLessonService) createLesson(ctx context.Context, courseID int, draft *models.LessonDraft) (*models.Lesson, error) {
	orderIndex, err := s.lessonRepo.NextOrderIndex(ctx, courseID)
	if err != nil {
		return nil, err
	}

	lesson := draftToLesson(courseID, draft)
	lesson.OrderIndex = orderIndex

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	if draft.Type == models.LessonTypeQuiz {
		if err := s.quizRepo.Replace(ctx, lesson.ID, draft.Quiz); err != nil {
			return nil, err
		}
	}

	return s.loadLesson(ctx, lesson.ID)
}

// updateLesson overwrites an existing lesson of the course
func (s *tutorLessonService) updateLesson(ctx context.Context, courseID int, draft *models.LessonDraft) (*models.Lesson, error) {
	existing, err := s.lessonRepo.GetByID(ctx, draft.ID)
	if err != nil {
		return nil, err
	}
	if existing.CourseID != courseID {
		return nil, models.NotFound("lesson not found")
	}

	lesson := draftToLesson(courseID, draft)
	lesson.ID = draft.ID
	lesson.OrderIndex = existing.OrderIndex

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}

	// Keep the quiz in step with the lesson type: a quiz draft replaces the
	// stored quiz, any other type drops it
	if draft.Type == models.LessonTypeQuiz {
		if err := s.quizRepo.Replace(ctx, lesson.ID, draft.Quiz); err != nil {
			return nil, err
		}
	} else if existing.Type == models.LessonTypeQuiz {
		if err := s.quizRepo.DeleteByLessonID(ctx, lesson.ID); err != nil {
			return nil, err
		}
	}

	return s.loadLesson(ctx, lesson.ID)
}

// draftToLesson maps a normalized draft onto a lesson record
func draftToLesson(courseID int, draft *models.LessonDraft) *models.Lesson {
	return &models.Lesson{
		CourseID:      courseID,
		Title:         draft.Title,
		Description:   draft.Description,
		Type:          draft.Type,
		VideoURL:      draft.VideoURL,
		VideoDuration: draft.VideoDuration,
		Content:       draft.Content,
	}
}

// loadLesson retrieves a lesson with its quiz attached for quiz lessons
func (s *tutorLessonService) loadLesson(ctx context.Context, id int) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if lesson.Type == models.LessonTypeQuiz {
		quiz, err := s.quizRepo.GetByLessonID(ctx, id)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		lesson.Quiz = quiz
	}

	return lesson, nil
}

// GetLesson retrieves a lesson of a course owned by the viewer
func (s *tutorLessonService) GetLesson(ctx context.Context, lessonID int, viewer models.Viewer) (*models.Lesson, error) {
	lesson, err := s.loadLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCourseOwnership(ctx, lesson.CourseID, viewer); err != nil {
		return nil, err
	}

	return lesson, nil
}

// ListLessons retrieves the lessons of a course owned by the viewer
func (s *tutorLessonService) ListLessons(ctx context.Context, courseID int, viewer models.Viewer) ([]models.LessonListItem, error) {
	if err := s.checkCourseOwnership(ctx, courseID, viewer); err != nil {
		return nil, err
	}

	return s.lessonRepo.ListByCourse(ctx, courseID)
}

// DeleteLesson deletes a lesson of a course owned by the viewer
func (s *tutorLessonService) DeleteLesson(ctx context.Context, lessonID int, viewer models.Viewer) error {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return err
	}

	if err := s.checkCourseOwnership(ctx, lesson.CourseID, viewer); err != nil {
		return err
	}

	return s.lessonRepo.Delete(ctx, lessonID)
}

// ReorderLessons rewrites the lesson order of a course owned by the viewer
func (s *tutorLessonService) ReorderLessons(ctx context.Context, courseID int, lessonIDs []int, viewer models.Viewer) error {
	if len(lessonIDs) == 0 {
		return models.Validation("lesson order must not be empty")
	}

	if err := s.checkCourseOwnership(ctx, courseID, viewer); err != nil {
		return err
	}

	return s.lessonRepo.Reorder(ctx, courseID, lessonIDs)
}

// checkCourseOwnership verifies the course exists and belongs to the viewer
func (s *tutorLessonService) checkCourseOwnership(ctx context.Context, courseID int, viewer models.Viewer) error {
	owns, err := s.courseRepo.CheckOwnership(ctx, courseID, viewer.ID)
	if err != nil {
		return fmt.Errorf("failed to check course ownership: %w", err)
	}
	if !owns {
		return models.Forbidden("you do not have rights to manage this course")
	}

	return nil
}
