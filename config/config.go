package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort             string
	TesseractDataPath      string
	PaddleOCRAPIURL        string
	MaxFileSize            int64
	EnableOCR              bool
	MinTextLengthForOCR    int
	LogLevel               string
	DatabasePath           string
	ResultCacheTTL         time.Duration
	MaxConcurrentDocuments int

	// Warnings collects invalid settings that fell back to their default. The logger is not
	// configured yet when the config loads, so the caller reports them.
	Warnings []string
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() *Config {
	cfg := &Config{}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		cfg.warn("failed to load .env file: %v", err)
	}

	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.TesseractDataPath = getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/")
	cfg.PaddleOCRAPIURL = getEnv("PADDLEOCR_API_URL", "")
	cfg.MaxFileSize = cfg.getEnvAsInt64("MAX_FILE_SIZE_BYTES", 10*1024*1024) // 10 MB
	cfg.EnableOCR = cfg.getEnvAsBool("ENABLE_OCR", true)
	cfg.MinTextLengthForOCR = cfg.getEnvAsInt("MIN_TEXT_LENGTH_FOR_OCR_SKIP", 120)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.DatabasePath = getEnv("DATABASE_PATH", "./extractions.db")
	cfg.ResultCacheTTL = cfg.getEnvAsDuration("RESULT_CACHE_TTL", 15*time.Minute)
	cfg.MaxConcurrentDocuments = cfg.getEnvAsInt("MAX_CONCURRENT_DOCUMENTS", 4)

	if cfg.MaxConcurrentDocuments < 1 {
		cfg.warn("MAX_CONCURRENT_DOCUMENTS must be at least 1, got %d; using 1", cfg.MaxConcurrentDocuments)
		cfg.MaxConcurrentDocuments = 1
	}

	return cfg
}

func (c *Config) warn(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		c.warn("invalid %s %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil || value <= 0 {
		c.warn("invalid %s %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		c.warn("invalid %s %q, using default %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		c.warn("invalid %s %q, using default %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
