// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the settings the CLI needs. Everything has a working
// default so the tool runs with no environment at all.
type Config struct {
	LogLevel  string
	Currency  string
	MaxFileMB int
}

// Load reads the optional .env file and then the environment. A
// missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:  getEnv("EDOCUENTA_LOG_LEVEL", "info"),
		Currency:  getEnv("EDOCUENTA_CURRENCY", "MXN"),
		MaxFileMB: getEnvAsInt("EDOCUENTA_MAX_FILE_MB", 10),
	}
}

// MaxFileBytes returns the upload bound in bytes.
func (c *Config) MaxFileBytes() int64 {
	return int64(c.MaxFileMB) * 1024 * 1024
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := getEnv(key, ""); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
