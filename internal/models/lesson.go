package models

// LessonType represents the content type of a lesson
type LessonType string

// Lesson content types
const (
	LessonTypeVideo LessonType = "video"
	LessonTypeText  LessonType = "text"
	LessonTypeQuiz  LessonType = "quiz"
)

// IsValid checks if the lesson type is one of the known types
func (t LessonType) IsValid() bool {
	return t == LessonTypeVideo || t == LessonTypeText || t == LessonTypeQuiz
}

// Lesson represents a lesson in a course
//
// Exactly one payload shape is active depending on Type: video lessons carry
// VideoURL and VideoDuration, text lessons carry Content, quiz lessons carry Quiz.
type Lesson struct {
	ID            int        `json:"id"`
	CourseID      int        `json:"courseId"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Type          LessonType `json:"type"`
	OrderIndex    int        `json:"orderIndex"`
	VideoURL      string     `json:"videoUrl,omitempty"`
	VideoDuration int        `json:"videoDuration,omitempty"` // seconds
	Content       string     `json:"content,omitempty"`
	Quiz          *Quiz      `json:"quiz,omitempty"`
}

// LessonDraft represents an authoring request for a new or existing lesson
//
// A single create-or-update payload: ID zero means create.
type LessonDraft struct {
	ID            int        `json:"id,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Type          LessonType `json:"type"`
	VideoURL      string     `json:"videoUrl,omitempty"`
	VideoDuration int        `json:"videoDuration,omitempty"`
	Content       string     `json:"content,omitempty"`
	Quiz          *QuizDraft `json:"quiz,omitempty"`
}

// LessonListItem represents a lesson in course listings
type LessonListItem struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Type       LessonType `json:"type"`
	OrderIndex int        `json:"orderIndex"`
}
