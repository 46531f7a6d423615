package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joseph-ayodele/docparse/internal/apperrors"
)

// Config holds all application configuration.
type Config struct {
	Database   DatabaseConfig
	HTTP       HTTPConfig
	Extraction ExtractionConfig
	Export     ExportConfig
}

// DatabaseConfig holds Postgres connection-pool configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// HTTPConfig holds the extraction HTTP service's listen configuration.
type HTTPConfig struct {
	Addr string
}

// ExtractionConfig holds defaults applied by the core parser and CLI.
type ExtractionConfig struct {
	DefaultLanguage     string
	ConfidenceThreshold float64
	SQLiteHistoryPath   string
}

// ExportConfig holds defaults for the XLSX export path.
type ExportConfig struct {
	OutputDir       string
	DefaultRowLimit int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Extraction: ExtractionConfig{
			DefaultLanguage:     getEnv("DEFAULT_LANGUAGE", "en"),
			ConfidenceThreshold: getEnvAsFloat32("CONFIDENCE_THRESHOLD", 0.6),
			SQLiteHistoryPath:   getEnv("SQLITE_HISTORY_PATH", "./docparse-history.db"),
		},
		Export: ExportConfig{
			OutputDir:       getEnv("EXPORT_OUTPUT_DIR", "./exports"),
			DefaultRowLimit: getEnvAsInt("EXPORT_DEFAULT_ROW_LIMIT", 500),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate sanity-checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Extraction.ConfidenceThreshold < 0 || c.Extraction.ConfidenceThreshold > 1 {
		return apperrors.NewAppError(400, "CONFIDENCE_THRESHOLD must be in [0,1]", apperrors.ErrInvalidInput)
	}
	if c.HTTP.Addr == "" {
		return apperrors.NewAppError(400, "HTTP_ADDR is required", apperrors.ErrInvalidInput)
	}
	return nil
}
