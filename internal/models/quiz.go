package models

// QuestionOptionCount is the fixed number of answer options per question
const QuestionOptionCount = 4

// Quiz represents a quiz attached to a lesson
type Quiz struct {
	ID               int        `json:"id"`
	LessonID         int        `json:"lessonId"`
	Title            string     `json:"title"`
	PassingScore     int        `json:"passingScore"` // percentage, 0-100
	TimeLimitMinutes int        `json:"timeLimitMinutes,omitempty"`
	Questions        []Question `json:"questions"`
}

// Question represents a single quiz question with exactly four options
type Question struct {
	ID           int      `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// QuizDraft represents the quiz part of a lesson authoring request
type QuizDraft struct {
	Title            string          `json:"title"`
	PassingScore     int             `json:"passingScore"`
	TimeLimitMinutes int             `json:"timeLimitMinutes,omitempty"`
	Questions        []QuestionDraft `json:"questions"`
}

// QuestionDraft represents a question in a quiz authoring request
type QuestionDraft struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}
