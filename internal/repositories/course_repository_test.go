package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learnhub-ng/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "language", "level", "duration_weeks",
		"price", "published", "teacher_id", "instructor", "student_count", "rating",
	})
}

func TestCourseRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	rows := courseRows().
		AddRow(1, "Yoruba for Beginners", "Everyday Yoruba", "Yoruba", "beginner", 8,
			5000.0, true, 42, "Tunde Bakare", 340, 4.8)

	mock.ExpectQuery("SELECT (.+) FROM courses c").
		WithArgs(1).
		WillReturnRows(rows)

	course, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Yoruba for Beginners", course.Title)
	assert.Equal(t, "Tunde Bakare", course.Instructor)
	assert.Equal(t, 340, course.StudentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM courses c").
		WithArgs(404).
		WillReturnRows(courseRows())

	_, err = repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_ListPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	rows := courseRows().
		AddRow(2, "Igbo Conversation Club", "Weekly practice", "Igbo", "intermediate", 6,
			0.0, true, 43, "Amaka Obi", 500, 4.2).
		AddRow(1, "Yoruba for Beginners", "Everyday Yoruba", "Yoruba", "beginner", 8,
			5000.0, true, 42, "Tunde Bakare", 340, 4.8)

	mock.ExpectQuery("SELECT (.+) FROM courses c (.+) WHERE c.published = TRUE").
		WillReturnRows(rows)

	courses, err := repo.ListPublished(context.Background())

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, 2, courses[0].ID, "newest course comes first")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_ListByTeacher(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	rows := courseRows().
		AddRow(3, "Hausa Basics", "Draft course", "Hausa", "beginner", 4,
			2500.0, false, 42, "Tunde Bakare", 0, 0.0)

	mock.ExpectQuery("SELECT (.+) FROM courses c (.+) WHERE c.teacher_id = ?").
		WithArgs(42).
		WillReturnRows(rows)

	courses, err := repo.ListByTeacher(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.False(t, courses[0].Published, "unpublished courses are listed for their owner")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	course := &models.Course{
		Title:         "Yoruba for Beginners",
		Description:   "Everyday Yoruba",
		Language:      "Yoruba",
		Level:         models.LevelBeginner,
		DurationWeeks: 8,
		Price:         5000,
		Published:     false,
		TeacherID:     42,
	}

	mock.ExpectExec("INSERT INTO courses").
		WithArgs("Yoruba for Beginners", "Everyday Yoruba", "Yoruba", models.LevelBeginner, 8, 5000.0, false, 42).
		WillReturnResult(sqlmock.NewResult(7, 1))

	err = repo.Create(context.Background(), course)

	require.NoError(t, err)
	assert.Equal(t, 7, course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	weeks := 12
	req := &models.UpdateCourseRequest{Title: "Yoruba for Beginners, 2nd edition", DurationWeeks: &weeks}

	mock.ExpectExec("UPDATE courses SET title = \\?, duration_weeks = \\?").
		WithArgs("Yoruba for Beginners, 2nd edition", 12, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), 7, req)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_Update_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	err = repo.Update(context.Background(), 7, &models.UpdateCourseRequest{})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	mock.ExpectExec("UPDATE courses SET title = \\?").
		WithArgs("Gone", 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), 404, &models.UpdateCourseRequest{Title: "Gone"})

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_SetPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	mock.ExpectExec("UPDATE courses SET published = \\? WHERE id = \\?").
		WithArgs(true, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetPublished(context.Background(), 7, true)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	mock.ExpectExec("DELETE FROM courses WHERE id = \\?").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCourseRepository(db)

	mock.ExpectExec("DELETE FROM courses WHERE id = \\?").
		WithArgs(404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_CheckOwnership(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "owner", exists: true},
		{name: "someone else", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewCourseRepository(db)

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(7, 42).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			owns, err := repo.CheckOwnership(context.Background(), 7, 42)

			require.NoError(t, err)
			assert.Equal(t, tt.exists, owns)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
