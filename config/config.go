package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBPath       string
	AppEnv       string // development|production
	LogLevel     string
	GuidePath    string // empty serves the built-in guide
	GuideDir     string // extra guides offered for selection
	SeedAlerts   bool
	GatewayToken string // shared secret for messaging-gateway callbacks
	EnvFile      string // .env file that was loaded, if any
}

// Strict reports whether contract violations should panic.
func (c AppConfig) Strict() bool { return c.AppEnv == "development" }

func (c AppConfig) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is empty")
	}
	switch c.AppEnv {
	case "development", "production":
	default:
		return fmt.Errorf("invalid APP_ENV %q", c.AppEnv)
	}
	return nil
}

// Load reads .env when present, then the environment.
func Load() AppConfig {
	envFile := ""
	if err := godotenv.Load(); err == nil {
		envFile = ".env"
	}
	cfg := FromEnv(os.Getenv)
	cfg.EnvFile = envFile
	return cfg
}

func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:         get("PORT", "8080"),
		DBPath:       get("DB_PATH", "fasal.db"),
		AppEnv:       strings.ToLower(get("APP_ENV", "production")),
		LogLevel:     get("LOG_LEVEL", "info"),
		GuidePath:    get("GUIDE_PATH", ""),
		GuideDir:     get("GUIDE_DIR", ""),
		SeedAlerts:   get("SEED_ALERTS", "true") == "true",
		GatewayToken: get("WHATSAPP_GATEWAY_TOKEN", ""),
	}
}
