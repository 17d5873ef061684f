package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration.
// It is loaded once at startup and kept in AppConfig.
type Config struct {
	Port               string
	ModelManifest      string
	LogLevel           string
	LogPretty          bool
	DatabaseURL        string
	RateLimitPerSecond float64
	RateLimitBurst     int
	LookbackDays       int
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads the .env file (if any) and the environment into AppConfig.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	AppConfig = Config{
		Port:               getEnvWithDefault("PORT", "3000"),
		ModelManifest:      getEnvWithDefault("MODEL_MANIFEST", "model.yaml"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		LogPretty:          getEnvBoolWithDefault("LOG_PRETTY", false),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RateLimitPerSecond: getEnvFloatWithDefault("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     getEnvIntWithDefault("RATE_LIMIT_BURST", 10),
		LookbackDays:       getEnvIntWithDefault("LOOKBACK_DAYS", 5),
	}

	return &AppConfig
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
