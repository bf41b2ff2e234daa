package services

import (
	"context"
	"errors"
	"testing"

	"github.com/learnhub-ng/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListCatalog(t *testing.T) {
	repo := &mockCourseReader{courses: catalogFixture()}
	svc := NewCatalogService(repo)

	courses, err := svc.ListCatalog(context.Background(), models.CatalogQuery{
		Search: "yoruba",
		Sort:   models.SortPopular,
	})

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, 1, courses[0].ID)
	assert.Equal(t, 3, courses[1].ID)
}

func TestCatalogService_ListCatalog_SetsPriceDisplay(t *testing.T) {
	repo := &mockCourseReader{courses: []models.Course{
		{ID: 1, Title: "Pidgin Basics", Price: 2500},
		{ID: 2, Title: "Edo Starter", Price: 0},
	}}
	svc := NewCatalogService(repo)

	courses, err := svc.ListCatalog(context.Background(), models.CatalogQuery{Sort: models.SortNewest})

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "₦2,500", courses[0].PriceDisplay)
	assert.Equal(t, "Free", courses[1].PriceDisplay)
}

func TestCatalogService_ListCatalog_EmptyStaysEmpty(t *testing.T) {
	svc := NewCatalogService(&mockCourseReader{courses: nil})

	courses, err := svc.ListCatalog(context.Background(), models.CatalogQuery{Sort: models.SortPopular})

	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCatalogService_ListCatalog_RepositoryError(t *testing.T) {
	svc := NewCatalogService(&mockCourseReader{err: errors.New("database error")})

	_, err := svc.ListCatalog(context.Background(), models.CatalogQuery{})

	assert.Error(t, err)
}

func TestCatalogService_GetCourse(t *testing.T) {
	tests := []struct {
		name        string
		course      *models.Course
		viewer      models.Viewer
		expectedErr error
	}{
		{
			name:   "published course is visible to anyone",
			course: &models.Course{ID: 1, Published: true, TeacherID: 42, Price: 5000},
			viewer: models.Viewer{},
		},
		{
			name:   "unpublished course is visible to its owner",
			course: &models.Course{ID: 1, Published: false, TeacherID: 42},
			viewer: models.Viewer{ID: 42, Role: models.RoleTeacher},
		},
		{
			name:        "unpublished course is hidden from students",
			course:      &models.Course{ID: 1, Published: false, TeacherID: 42},
			viewer:      models.Viewer{ID: 5, Role: models.RoleStudent},
			expectedErr: models.ErrNotFound,
		},
		{
			name:        "unpublished course is hidden from other teachers",
			course:      &models.Course{ID: 1, Published: false, TeacherID: 42},
			viewer:      models.Viewer{ID: 9, Role: models.RoleTeacher},
			expectedErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(&mockCourseReader{course: tt.course})

			course, err := svc.GetCourse(context.Background(), 1, tt.viewer)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.course.ID, course.ID)
			assert.NotEmpty(t, course.PriceDisplay)
		})
	}
}
