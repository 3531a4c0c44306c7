package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(env(nil))
	assert.Equal(t, AppConfig{
		Port:       "8080",
		DBPath:     "fasal.db",
		AppEnv:     "production",
		LogLevel:   "info",
		SeedAlerts: true,
	}, cfg)
	assert.False(t, cfg.Strict())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"PORT":                   "9090",
		"DB_PATH":                "/tmp/x.db",
		"APP_ENV":                "Development",
		"LOG_LEVEL":              "debug",
		"GUIDE_PATH":             "guides/rice.yaml",
		"SEED_ALERTS":            "false",
		"GUIDE_DIR":              "guides",
		"WHATSAPP_GATEWAY_TOKEN": " tok ",
	}))
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.True(t, cfg.Strict())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "guides/rice.yaml", cfg.GuidePath)
	assert.False(t, cfg.SeedAlerts)
	assert.Equal(t, "guides", cfg.GuideDir)
	assert.Equal(t, "tok", cfg.GatewayToken)
}

func TestValidate(t *testing.T) {
	base := FromEnv(env(nil))

	bad := base
	bad.Port = "http"
	assert.Error(t, bad.Validate())

	bad = base
	bad.Port = "70000"
	assert.Error(t, bad.Validate())

	bad = base
	bad.AppEnv = "staging"
	assert.Error(t, bad.Validate())

	bad = base
	bad.DBPath = ""
	assert.Error(t, bad.Validate())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))

	cfg := Load()
	assert.Equal(t, ".env", cfg.EnvFile)
	assert.Equal(t, "7070", cfg.Port)
}
