package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := `
		SELECT id, course_id, title, description, type, order_index,
			COALESCE(video_url, ''), COALESCE(video_duration, 0), COALESCE(content, '')
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Type,
		&lesson.OrderIndex,
		&lesson.VideoURL,
		&lesson.VideoDuration,
		&lesson.Content,
	)

	if err == sql.ErrNoRows {
		return nil, models.NotFound("lesson not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return &lesson, nil
}

// ListByCourse retrieves all lessons of a course ordered by their order index
func (r *lessonRepository) ListByCourse(ctx context.Context, courseID int) ([]models.LessonListItem, error) {
	query := `
		SELECT id, title, type, order_index
		FROM lessons
		WHERE course_id = ?
		ORDER BY order_index
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonListItem
	for rows.Next() {
		var lesson models.LessonListItem
		err := rows.Scan(&lesson.ID, &lesson.Title, &lesson.Type, &lesson.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// NextOrderIndex returns the order index for a lesson appended to a course
// Order indexes are contiguous starting at 1
func (r *lessonRepository) NextOrderIndex(ctx context.Context, courseID int) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), 0) + 1 FROM lessons WHERE course_id = ?`

	var next int
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to get next order index: %w", err)
	}

	return next, nil
}

// Create creates a new lesson
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := `
		INSERT INTO lessons (course_id, title, description, type, order_index, video_url, video_duration, content)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, 0), NULLIF(?, ''))
	`

	result, err := r.db.ExecContext(ctx, query,
		lesson.CourseID,
		lesson.Title,
		lesson.Description,
		lesson.Type,
		lesson.OrderIndex,
		lesson.VideoURL,
		lesson.VideoDuration,
		lesson.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lesson.ID = int(id)
	return nil
}

// Update overwrites the editable fields of a lesson, including its payload
// columns, so that switching the lesson type clears stale payload values
func (r *lessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	query := `
		UPDATE lessons
		SET title = ?, description = ?, type = ?,
			video_url = NULLIF(?, ''), video_duration = NULLIF(?, 0), content = NULLIF(?, '')
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		lesson.Title,
		lesson.Description,
		lesson.Type,
		lesson.VideoURL,
		lesson.VideoDuration,
		lesson.Content,
		lesson.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.NotFound("lesson not found")
	}

	return nil
}

// Delete deletes a lesson and compacts the order indexes of the remaining
// lessons so they stay contiguous
func (r *lessonRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var courseID, orderIndex int
	err = tx.QueryRowContext(ctx,
		`SELECT course_id, order_index FROM lessons WHERE id = ? LIMIT 1`, id,
	).Scan(&courseID, &orderIndex)
	if err == sql.ErrNoRows {
		return models.NotFound("lesson not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get lesson order: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE lessons SET order_index = order_index - 1 WHERE course_id = ? AND order_index > ? ORDER BY order_index`,
		courseID, orderIndex,
	)
	if err != nil {
		return fmt.Errorf("failed to compact lesson order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Reorder rewrites the order indexes of a course's lessons to match the given
// lesson ID sequence. The sequence must contain every lesson of the course
// exactly once; order indexes stay contiguous starting at 1.
func (r *lessonRepository) Reorder(ctx context.Context, courseID int, lessonIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lessons WHERE course_id = ?`, courseID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count lessons: %w", err)
	}
	if count != len(lessonIDs) {
		return models.Validation("lesson order must list every lesson of the course exactly once")
	}

	// Move out of the way of the unique (course_id, order_index) constraint
	_, err = tx.ExecContext(ctx,
		`UPDATE lessons SET order_index = order_index + ? WHERE course_id = ?`,
		count, courseID,
	)
	if err != nil {
		return fmt.Errorf("failed to shift lesson order: %w", err)
	}

	for i, lessonID := range lessonIDs {
		result, err := tx.ExecContext(ctx,
			`UPDATE lessons SET order_index = ? WHERE id = ? AND course_id = ?`,
			i+1, lessonID, courseID,
		)
		if err != nil {
			return fmt.Errorf("failed to reorder lesson: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return models.Validation("lesson order contains a lesson from another course")
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
