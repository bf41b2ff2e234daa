package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "learnhub")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "learnhub")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_BASE_PATH", "/var/lib/learnhub/uploads")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "file://migrations", cfg.Database.MigrationsPath)
	assert.Equal(t, int64(500<<20), cfg.Upload.MaxVideoSize)
	assert.Equal(t, int64(100<<20), cfg.Upload.MaxFileSize)
}

func TestLoad_MigrationsPathOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MIGRATIONS_PATH", "file:///srv/learnhub/migrations")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file:///srv/learnhub/migrations", cfg.Database.MigrationsPath)
}

func TestLoad_MissingRequiredVariable(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestLoad_DSN(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "learnhub:secret@tcp(localhost:3306)/learnhub?parseTime=true&charset=utf8mb4", cfg.DSN())
}
