package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiredFieldMissing(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required config")
	assert.Contains(t, err.Error(), "DATABASE_FILE_PATH")
	assert.Contains(t, err.Error(), "database_file_path")
}

func TestNew_WithEnvVar(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "/tmp/test.db")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DatabaseFilePath)
}

func TestNew_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
database_file_path: /data/bookstore.db
server_port: 8080
database_debug: true
images_dir: /data/images
cors_allow_origins:
  - https://books.example.com
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("CONFIG_FILE", configPath)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/bookstore.db", cfg.DatabaseFilePath)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.DatabaseDebug)
	assert.Equal(t, "/data/images", cfg.ImagesDir)
	assert.Equal(t, []string{"https://books.example.com"}, cfg.CORSAllowOrigins)
}

func TestNew_EnvVarOverridesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
database_file_path: /data/from-file.db
server_port: 8080
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("DATABASE_FILE_PATH", "/data/from-env.db")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-env.db", cfg.DatabaseFilePath)
	assert.Equal(t, 9090, cfg.ServerPort)
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "/tmp/test.db")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.DatabaseConnectRetryCount)
	assert.Equal(t, 2*time.Second, cfg.DatabaseConnectRetryDelay)
	assert.Equal(t, 5*time.Second, cfg.DatabaseBusyTimeout)
	assert.False(t, cfg.DatabaseDebug)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 5000, cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, ImageStorageFilesystem, cfg.ImageStorage)
	assert.Equal(t, "./wwwroot/images", cfg.ImagesDir)
}

func TestNew_DurationFromEnv(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "/tmp/test.db")
	t.Setenv("DATABASE_BUSY_TIMEOUT", "250ms")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.DatabaseBusyTimeout)
}

func TestNew_S3RequiresBucket(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "/tmp/test.db")
	t.Setenv("IMAGE_STORAGE", "s3")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3_bucket")
}

func TestNew_UnknownImageStorage(t *testing.T) {
	t.Setenv("DATABASE_FILE_PATH", "/tmp/test.db")
	t.Setenv("IMAGE_STORAGE", "ftp")
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown image_storage "ftp"`)
}

func TestNewForTest(t *testing.T) {
	cfg := NewForTest()
	assert.Equal(t, ":memory:", cfg.DatabaseFilePath)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, ImageStorageFilesystem, cfg.ImageStorage)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "database_file_path", toSnakeCase("DatabaseFilePath"))
	assert.Equal(t, "server_port", toSnakeCase("ServerPort"))
	assert.Equal(t, "images_dir", toSnakeCase("ImagesDir"))
}
