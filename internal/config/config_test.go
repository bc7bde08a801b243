package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("STORAGE_ENDPOINT", "http://localhost:9000")
		t.Setenv("STORAGE_REGION", "us-east-1")
		t.Setenv("STORAGE_BUCKET", "assets")
		t.Setenv("STORAGE_ACCESS_KEY", "access")
		t.Setenv("STORAGE_SECRET_KEY", "secret")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "http://localhost:9000", cfg.StorageEndpoint)
		assert.Equal(t, "us-east-1", cfg.StorageRegion)
		assert.Equal(t, "assets", cfg.StorageBucket)
		assert.Equal(t, "access", cfg.StorageAccessKey)
		assert.Equal(t, "secret", cfg.StorageSecretKey)
	})
}
