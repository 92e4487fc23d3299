package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTTL())
	assert.Equal(t, "/static/uploads", cfg.Uploads.PublicPrefix)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
database:
  type: postgres
  postgres:
    host: db.internal
    port: 5432
    user: litoral
    database: imoveis
smtp:
  host: smtp.example.com
  from: site@litoralprime.com.br
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode, "default survives partial file")
	assert.True(t, cfg.SMTP.Enabled())
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nao-existe.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("PORT", "3000")
	t.Setenv("ADMIN_USERNAME", "gestor")
	t.Setenv("ADMIN_RESET_PASSWORD", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "gestor", cfg.Auth.AdminUsername)
	assert.True(t, cfg.Auth.ResetAdminPassword)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
