package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Arun-hash30/Attendence-helix/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("HR_AUTH_JWT_SECRET", "0123456789abcdef-secret")
	t.Setenv("HR_LEAVE_ALLOTMENTS_SICK", "6")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load("")

	assert.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 12.0, cfg.Leave.Allotments.Casual)
	assert.Equal(t, 6.0, cfg.Leave.Allotments.Sick)
	assert.Equal(t, 15.0, cfg.Leave.Allotments.Annual)
	assert.Equal(t, 10*time.Minute, cfg.Cache.CalendarTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 50, cfg.Kafka.BatchSize)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 8088
auth:
  jwt_secret: file-secret-0123456789
leave:
  allotments:
    annual: 20
`)
	assert.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)

	assert.NoError(t, err)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, 20.0, cfg.Leave.Allotments.Annual)
	assert.Equal(t, "hr_portal", cfg.Database.Name)
}

func TestValidate(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{Port: 3000},
		Auth:   config.AuthConfig{JWTSecret: "short"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "long-enough-secret-value"
	assert.NoError(t, cfg.Validate())

	cfg.Leave.Allotments.Casual = -1
	assert.Error(t, cfg.Validate())
}
