package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Production ProductionConfig
	Review     ReviewConfig
	Answer     AnswerConfig
	SMTP       SMTPConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JWTSecret          string
	OTLPEndpoint       string
}

type DatabaseConfig struct {
	Connection string
}

// ProductionConfig controls how the reconciler talks to the production
// content tables.
type ProductionConfig struct {
	// LockRows wraps fetch + conditional update in one transaction with the
	// lookup row locked (SELECT ... FOR UPDATE). Off by default to match the
	// legacy two-statement sequence.
	LockRows bool
}

type ReviewConfig struct {
	// StrictSubmit makes a reconciler failure abort the whole submit instead
	// of committing the review and surfacing a warning.
	StrictSubmit bool
	// ClaimTTL > 0 enables the advisory claim lease on the queue selector.
	ClaimTTL time.Duration
}

type AnswerConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			OTLPEndpoint:       getEnv("OTLP_ENDPOINT", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Production: ProductionConfig{
			LockRows: getEnvAsBool("PRODUCTION_LOCK_ROWS", false),
		},
		Review: ReviewConfig{
			StrictSubmit: getEnvAsBool("REVIEW_STRICT_SUBMIT", false),
			ClaimTTL:     getEnvAsDuration("QUEUE_CLAIM_TTL", 0),
		},
		Answer: AnswerConfig{
			BaseURL: getEnv("ANSWER_SERVICE_URL", "http://localhost:8000/v2/answer"),
			APIKey:  getEnv("ANSWER_SERVICE_API_KEY", ""),
			Timeout: getEnvAsDuration("ANSWER_SERVICE_TIMEOUT", 30*time.Second),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "QA Review"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
