package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/learnhub-ng/backend/internal/models"
)

// mysqlDuplicateEntry is the MySQL error number for unique key violations
const mysqlDuplicateEntry = 1062

type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment row with zero progress
// The composite primary key rejects a second row for the same (course, student)
// pair; that case surfaces as a conflict error.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (course_id, student_id, progress)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		enrollment.CourseID,
		enrollment.StudentID,
		enrollment.Progress,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return models.Conflict("already enrolled in this course")
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	return nil
}

// Get retrieves the enrollment for a (course, student) pair
func (r *enrollmentRepository) Get(ctx context.Context, courseID, studentID int) (*models.Enrollment, error) {
	query := `
		SELECT course_id, student_id, progress, completed_at, enrolled_at
		FROM enrollments
		WHERE course_id = ? AND student_id = ?
		LIMIT 1
	`

	var enrollment models.Enrollment
	err := r.db.QueryRowContext(ctx, query, courseID, studentID).Scan(
		&enrollment.CourseID,
		&enrollment.StudentID,
		&enrollment.Progress,
		&enrollment.CompletedAt,
		&enrollment.EnrolledAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.NotFound("enrollment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

// Exists checks if an enrollment exists for a (course, student) pair
func (r *enrollmentRepository) Exists(ctx context.Context, courseID, studentID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE course_id = ? AND student_id = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, courseID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment existence: %w", err)
	}

	return exists, nil
}

// UpdateProgress stores the progress of an enrollment
// The completion timestamp is written by the database only the first time
// progress reaches 100; the completed_at IS NULL guard keeps later updates
// from ever touching it.
//
// MySQL reports rows changed, not rows matched, so re-submitting the stored
// progress value affects zero rows. Zero affected rows therefore falls back
// to an existence check instead of being read as a missing enrollment.
func (r *enrollmentRepository) UpdateProgress(ctx context.Context, courseID, studentID, progress int) error {
	query := `
		UPDATE enrollments
		SET progress = ?,
			completed_at = CASE WHEN ? >= 100 AND completed_at IS NULL THEN NOW() ELSE completed_at END
		WHERE course_id = ? AND student_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, progress, progress, courseID, studentID)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		exists, err := r.Exists(ctx, courseID, studentID)
		if err != nil {
			return err
		}
		if !exists {
			return models.NotFound("enrollment not found")
		}
	}

	return nil
}

// CountByCourse counts the enrollments of a course
func (r *enrollmentRepository) CountByCourse(ctx context.Context, courseID int) (int, error) {
	query := `SELECT COUNT(*) FROM enrollments WHERE course_id = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}

	return count, nil
}

// ListByStudent retrieves the courses a student is enrolled in together with
// their progress, most recent enrollment first
func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID int) ([]models.EnrolledCourse, error) {
	query := fmt.Sprintf(`
		SELECT %s, en.progress, en.completed_at
		FROM enrollments en
		JOIN courses c ON c.id = en.course_id
		JOIN users u ON u.id = c.teacher_id
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE en.student_id = ?
		GROUP BY c.id, en.progress, en.completed_at, en.enrolled_at
		ORDER BY en.enrolled_at DESC
	`, courseColumns)

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled courses: %w", err)
	}
	defer rows.Close()

	var enrolled []models.EnrolledCourse
	for rows.Next() {
		var item models.EnrolledCourse
		err := rows.Scan(
			&item.Course.ID,
			&item.Course.Title,
			&item.Course.Description,
			&item.Course.Language,
			&item.Course.Level,
			&item.Course.DurationWeeks,
			&item.Course.Price,
			&item.Course.Published,
			&item.Course.TeacherID,
			&item.Course.Instructor,
			&item.Course.StudentCount,
			&item.Course.Rating,
			&item.Progress,
			&item.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrolled course: %w", err)
		}
		enrolled = append(enrolled, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return enrolled, nil
}
