// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	DatabasePath    string
	JWTSecretKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string
	DefaultProvider string
	DefaultModelID  string
}

// Load reads configuration from environment variables or a .env file.
// Provider API keys are deliberately optional: the dispatcher degrades to
// advisory responses when a key is absent.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     env,
		DatabasePath:    getEnv("DATABASE_PATH", "threadflow.db"),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		DefaultProvider: getEnv("DEFAULT_MODEL_PROVIDER", "google"),
		DefaultModelID:  getEnv("DEFAULT_MODEL_ID", "gemini-1.5-flash"),
	}

	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
