package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	WebhookSecret string // shared secret for the auth-provider sync webhook

	ChatApiURL string // OpenAI-compatible chat completions endpoint
	ChatApiKey string
	ChatModel  string

	CoursesDir        string // markdown course material for the offline seeder
	RecentActivityMax int
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
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		WebhookSecret: getEnv("AUTH_WEBHOOK_SECRET", "defaultSecret"),

		ChatApiURL: getEnv("CHAT_API_URL", "https://api.openai.com/v1/chat/completions"),
		ChatApiKey: getEnv("CHAT_API_KEY", ""),
		ChatModel:  getEnv("CHAT_MODEL", "gpt-4o-mini"),

		CoursesDir:        getEnv("COURSES_DIR", "./content/courses"),
		RecentActivityMax: getEnvInt("RECENT_ACTIVITY_MAX", 10),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.WebhookSecret == "defaultSecret" {
		log.Println("Warning: Using default AUTH_WEBHOOK_SECRET. Update it in your environment.")
	}
	if AppConfig.ChatApiKey == "" {
		log.Println("Warning: CHAT_API_KEY is not set. The chat tutor will return its fallback reply.")
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
