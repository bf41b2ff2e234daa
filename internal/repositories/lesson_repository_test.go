package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learnhub-ng/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "course_id", "title", "description", "type", "order_index",
		"video_url", "video_duration", "content",
	}).AddRow(10, 7, "Greetings", "", "video", 1, "http://localhost:8080/api/v1/media/video/abc.mp4", 300, "")

	mock.ExpectQuery("SELECT id, course_id, title, description, type, order_index").
		WithArgs(10).
		WillReturnRows(rows)

	lesson, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, models.LessonTypeVideo, lesson.Type)
	assert.Equal(t, 300, lesson.VideoDuration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectQuery("SELECT id, course_id, title, description, type, order_index").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "course_id", "title", "description", "type", "order_index",
			"video_url", "video_duration", "content",
		}))

	_, err = repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_ListByCourse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "type", "order_index"}).
		AddRow(10, "Greetings", "video", 1).
		AddRow(11, "Alphabet", "text", 2).
		AddRow(12, "Week 1 check", "quiz", 3)

	mock.ExpectQuery("SELECT id, title, type, order_index FROM lessons").
		WithArgs(7).
		WillReturnRows(rows)

	lessons, err := repo.ListByCourse(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, 1, lessons[0].OrderIndex)
	assert.Equal(t, models.LessonTypeQuiz, lessons[2].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_NextOrderIndex(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectQuery("SELECT COALESCE\\(MAX\\(order_index\\), 0\\) \\+ 1 FROM lessons").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(4))

	next, err := repo.NextOrderIndex(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 4, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	lesson := &models.Lesson{
		CourseID:   7,
		Title:      "Alphabet",
		Type:       models.LessonTypeText,
		OrderIndex: 2,
		Content:    "The Yoruba alphabet has 25 letters.",
	}

	mock.ExpectExec("INSERT INTO lessons").
		WithArgs(7, "Alphabet", "", "text", 2, "", 0, "The Yoruba alphabet has 25 letters.").
		WillReturnResult(sqlmock.NewResult(11, 1))

	err = repo.Create(context.Background(), lesson)

	require.NoError(t, err)
	assert.Equal(t, 11, lesson.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	lesson := &models.Lesson{
		ID:      11,
		Title:   "Alphabet, revised",
		Type:    models.LessonTypeText,
		Content: "Now with tone marks.",
	}

	mock.ExpectExec("UPDATE lessons SET title = \\?").
		WithArgs("Alphabet, revised", "", "text", "", 0, "Now with tone marks.", 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), lesson)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectExec("UPDATE lessons SET title = \\?").
		WithArgs("Gone", "", "text", "", 0, "x", 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &models.Lesson{ID: 404, Title: "Gone", Type: models.LessonTypeText, Content: "x"})

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Delete_CompactsOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT course_id, order_index FROM lessons WHERE id = \\?").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "order_index"}).AddRow(7, 2))
	mock.ExpectExec("DELETE FROM lessons WHERE id = \\?").
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE lessons SET order_index = order_index - 1").
		WithArgs(7, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Delete(context.Background(), 11)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT course_id, order_index FROM lessons WHERE id = \\?").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "order_index"}))
	mock.ExpectRollback()

	err = repo.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Reorder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM lessons WHERE course_id = \\?").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	// Shift clears the way for the unique (course_id, order_index) key
	mock.ExpectExec("UPDATE lessons SET order_index = order_index \\+ \\?").
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE lessons SET order_index = \\? WHERE id = \\?").
		WithArgs(1, 12, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE lessons SET order_index = \\? WHERE id = \\?").
		WithArgs(2, 10, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE lessons SET order_index = \\? WHERE id = \\?").
		WithArgs(3, 11, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Reorder(context.Background(), 7, []int{12, 10, 11})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Reorder_WrongCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM lessons WHERE course_id = \\?").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	err = repo.Reorder(context.Background(), 7, []int{12, 10})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Reorder_ForeignLesson(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLessonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM lessons WHERE course_id = \\?").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec("UPDATE lessons SET order_index = order_index \\+ \\?").
		WithArgs(2, 7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE lessons SET order_index = \\? WHERE id = \\?").
		WithArgs(1, 10, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// A lesson ID from another course updates nothing
	mock.ExpectExec("UPDATE lessons SET order_index = \\? WHERE id = \\?").
		WithArgs(2, 99, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.Reorder(context.Background(), 7, []int{10, 99})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
