package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

type quizRepository struct {
	db *sql.DB
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *sql.DB) *quizRepository {
	return &quizRepository{
		db: db,
	}
}

// GetByLessonID retrieves a quiz with its questions for a lesson
func (r *quizRepository) GetByLessonID(ctx context.Context, lessonID int) (*models.Quiz, error) {
	query := `
		SELECT id, lesson_id, title, passing_score, COALESCE(time_limit_minutes, 0)
		FROM quizzes
		WHERE lesson_id = ?
		LIMIT 1
	`

	var quiz models.Quiz
	err := r.db.QueryRowContext(ctx, query, lessonID).Scan(
		&quiz.ID,
		&quiz.LessonID,
		&quiz.Title,
		&quiz.PassingScore,
		&quiz.TimeLimitMinutes,
	)

	if err == sql.ErrNoRows {
		return nil, models.NotFound("quiz not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz by lesson id: %w", err)
	}

	questions, err := r.getQuestions(ctx, quiz.ID)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions

	return &quiz, nil
}

// getQuestions retrieves the ordered questions of a quiz
func (r *quizRepository) getQuestions(ctx context.Context, quizID int) ([]models.Question, error) {
	query := `
		SELECT id, prompt, option_1, option_2, option_3, option_4, correct_index, COALESCE(explanation, '')
		FROM questions
		WHERE quiz_id = ?
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		options := make([]string, models.QuestionOptionCount)
		err := rows.Scan(
			&q.ID,
			&q.Prompt,
			&options[0],
			&options[1],
			&options[2],
			&options[3],
			&q.CorrectIndex,
			&q.Explanation,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Options = options
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return questions, nil
}

// Replace overwrites the quiz of a lesson with the given draft, creating it
// when none exists yet. Questions are rewritten wholesale to keep their order
// authoritative.
func (r *quizRepository) Replace(ctx context.Context, lessonID int, draft *models.QuizDraft) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Drop the previous quiz, if any; questions cascade
	_, err = tx.ExecContext(ctx, `DELETE FROM quizzes WHERE lesson_id = ?`, lessonID)
	if err != nil {
		return fmt.Errorf("failed to delete previous quiz: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO quizzes (lesson_id, title, passing_score, time_limit_minutes) VALUES (?, ?, ?, NULLIF(?, 0))`,
		lessonID,
		draft.Title,
		draft.PassingScore,
		draft.TimeLimitMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	quizID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	for i, q := range draft.Questions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO questions (quiz_id, position, prompt, option_1, option_2, option_3, option_4, correct_index, explanation)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''))`,
			quizID,
			i+1,
			q.Prompt,
			q.Options[0],
			q.Options[1],
			q.Options[2],
			q.Options[3],
			q.CorrectIndex,
			q.Explanation,
		)
		if err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteByLessonID deletes the quiz of a lesson, if any
func (r *quizRepository) DeleteByLessonID(ctx context.Context, lessonID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE lesson_id = ?`, lessonID)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	return nil
}
