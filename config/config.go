package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	SessionDBName string

	ApiBaseURL string // Base URL of the remote welfare-scheme API

	SessionTTLHours   int
	OtpCooldownSec    int
	SessionCookieName string

	LogFile string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:          getEnv("PORT", "3000"),
		SessionDBName: getEnv("SESSION_DB_NAME", "sessions.db"),

		ApiBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),

		SessionTTLHours:   getEnvInt("SESSION_TTL_HOURS", 24),
		OtpCooldownSec:    getEnvInt("OTP_RESEND_COOLDOWN_SEC", 30),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "sid"),

		LogFile: getEnv("LOG_FILE", "./logs/app.log"),
	}

	// Validate critical configuration
	if AppConfig.ApiBaseURL == "http://localhost:8000" {
		log.Println("Warning: Using default API_BASE_URL. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
