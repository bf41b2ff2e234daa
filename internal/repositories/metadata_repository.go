package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhub-ng/backend/internal/models"
)

// metadataRepository implements file metadata repository operations
type metadataRepository struct {
	db *sql.DB
}

// NewMetadataRepository creates a new file metadata repository
func NewMetadataRepository(db *sql.DB) *metadataRepository {
	return &metadataRepository{
		db: db,
	}
}

// Create inserts a new file metadata record into the database
func (r *metadataRepository) Create(ctx context.Context, metadata *models.FileMetadata) error {
	query := `
		INSERT INTO file_metadata (id, bucket, content_type, size, url, uploaded_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		metadata.ID,
		metadata.Bucket,
		metadata.ContentType,
		metadata.Size,
		metadata.URL,
		metadata.UploadedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to create file metadata: %w", err)
	}

	return nil
}

// GetByID retrieves file metadata by ID
func (r *metadataRepository) GetByID(ctx context.Context, id string) (*models.FileMetadata, error) {
	query := `
		SELECT bucket, content_type, size, url, uploaded_by, created_at
		FROM file_metadata
		WHERE id = ?
		LIMIT 1
	`

	metadata := &models.FileMetadata{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&metadata.Bucket,
		&metadata.ContentType,
		&metadata.Size,
		&metadata.URL,
		&metadata.UploadedBy,
		&metadata.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.NotFound("file not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file metadata by id: %w", err)
	}

	metadata.ID = id
	return metadata, nil
}

// DeleteByID deletes file metadata by ID
func (r *metadataRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM file_metadata WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file metadata: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.NotFound("file not found")
	}

	return nil
}
