package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/learnhub-ng/backend/internal/models"
)

// courseColumns is the SELECT list shared by course queries, including the
// denormalized instructor name and enrollment count
const courseColumns = `
	c.id,
	c.title,
	c.description,
	c.language,
	c.level,
	c.duration_weeks,
	c.price,
	c.published,
	c.teacher_id,
	u.name AS instructor,
	COUNT(DISTINCT e.student_id) AS student_count,
	c.rating
`

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// scanCourse scans one course row from the shared SELECT list
func scanCourse(row interface{ Scan(...any) error }) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Language,
		&course.Level,
		&course.DurationWeeks,
		&course.Price,
		&course.Published,
		&course.TeacherID,
		&course.Instructor,
		&course.StudentCount,
		&course.Rating,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		JOIN users u ON u.id = c.teacher_id
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.id = ?
		GROUP BY c.id
		LIMIT 1
	`, courseColumns)

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.NotFound("course not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return course, nil
}

// ListPublished retrieves all published courses ordered by creation time,
// newest first
func (r *courseRepository) ListPublished(ctx context.Context) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		JOIN users u ON u.id = c.teacher_id
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.published = TRUE
		GROUP BY c.id
		ORDER BY c.id DESC
	`, courseColumns)

	return r.queryCourses(ctx, query)
}

// ListByTeacher retrieves all courses owned by a teacher, including unpublished ones
func (r *courseRepository) ListByTeacher(ctx context.Context, teacherID int) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM courses c
		JOIN users u ON u.id = c.teacher_id
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.teacher_id = ?
		GROUP BY c.id
		ORDER BY c.id DESC
	`, courseColumns)

	return r.queryCourses(ctx, query, teacherID)
}

// queryCourses runs a course query and scans all rows
func (r *courseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// Create creates a new course
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, description, language, level, duration_weeks, price, published, teacher_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		course.Title,
		course.Description,
		course.Language,
		course.Level,
		course.DurationWeeks,
		course.Price,
		course.Published,
		course.TeacherID,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	course.ID = int(id)
	return nil
}

// Update updates a course (partial update)
func (r *courseRepository) Update(ctx context.Context, id int, req *models.UpdateCourseRequest) error {
	var setParts []string
	var args []any

	if req.Title != "" {
		setParts = append(setParts, "title = ?")
		args = append(args, req.Title)
	}
	if req.Description != "" {
		setParts = append(setParts, "description = ?")
		args = append(args, req.Description)
	}
	if req.Language != "" {
		setParts = append(setParts, "language = ?")
		args = append(args, req.Language)
	}
	if req.Level != "" {
		setParts = append(setParts, "level = ?")
		args = append(args, req.Level)
	}
	if req.DurationWeeks != nil {
		setParts = append(setParts, "duration_weeks = ?")
		args = append(args, *req.DurationWeeks)
	}
	if req.Price != nil {
		setParts = append(setParts, "price = ?")
		args = append(args, *req.Price)
	}

	if len(setParts) == 0 {
		return models.Validation("at least one field must be provided")
	}

	query := fmt.Sprintf(`
		UPDATE courses
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.NotFound("course not found")
	}

	return nil
}

// SetPublished flips the published flag of a course
func (r *courseRepository) SetPublished(ctx context.Context, id int, published bool) error {
	query := `UPDATE courses SET published = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, published, id)
	if err != nil {
		return fmt.Errorf("failed to set published flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.NotFound("course not found")
	}

	return nil
}

// Delete deletes a course by ID
// Lessons, quizzes and enrollments cascade via foreign keys
func (r *courseRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM courses WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.NotFound("course not found")
	}

	return nil
}

// CheckOwnership checks if a course belongs to a teacher
func (r *courseRepository) CheckOwnership(ctx context.Context, id, teacherID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM courses WHERE id = ? AND teacher_id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id, teacherID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check course ownership: %w", err)
	}

	return exists, nil
}
