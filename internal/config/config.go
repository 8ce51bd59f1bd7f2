package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath      string
	CatalogPath string
	SourceExt   string
	ExportDir   string
	ExportXLSX  bool
	APIPort     string
	LogLevel    slog.Level
	LogFormat   string
}

// Load reads configuration from environment variables and returns a Config
// struct. It applies defaults for optional fields and validates required
// fields. If a .env file exists in the current directory or project root, it
// will be loaded automatically. Environment variables already set take
// precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:      getEnv("DB_PATH", "./data/partcatalog.db"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		SourceExt:   getEnv("SOURCE_EXT", ".dat"),
		ExportDir:   getEnv("EXPORT_DIR", "./exports"),
		ExportXLSX:  getEnvBool("EXPORT_XLSX", false),
		APIPort:     getEnv("API_PORT", "9000"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Validate required fields
	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("CATALOG_PATH is required")
	}
	if !strings.HasPrefix(cfg.SourceExt, ".") {
		cfg.SourceExt = "." + cfg.SourceExt
	}

	// Create data and export directories if they don't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL: %q", level)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable or returns a default value.
func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
