// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	JWTSecretKey string
	DatabasePath string
	Environment  string

	// Cloud LLM (Gemini via its OpenAI-compatible endpoint)
	GeminiAPIKey       string
	GeminiBaseURL      string
	GeminiPrimaryModel string
	GeminiFallbacks    []string
	CloudTimeoutSec    int

	// Local LLM runtime (Ollama)
	OllamaHost      string
	OllamaPreferred string
	OllamaFallbacks []string
	LocalTimeoutSec int

	// Web search (Tavily)
	TavilyAPIKey string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		DatabasePath: getEnv("DATABASE_PATH", "medibot.db"),
		Environment:  env,

		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		GeminiPrimaryModel: getEnv("GEMINI_PRIMARY_MODEL", "gemini-1.5-flash"),
		GeminiFallbacks:    getEnvAsList("GEMINI_FALLBACK_MODELS", "gemini-1.5-flash-8b,gemini-1.0-pro"),
		CloudTimeoutSec:    getEnvAsInt("CLOUD_TIMEOUT_SECONDS", 30),

		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaPreferred: getEnv("OLLAMA_PREFERRED_MODEL", ""),
		OllamaFallbacks: getEnvAsList("OLLAMA_FALLBACK_MODELS", ""),
		LocalTimeoutSec: getEnvAsInt("LOCAL_TIMEOUT_SECONDS", 60),

		TavilyAPIKey: getEnv("TAVILY_API_KEY", ""),
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if cfg.GeminiAPIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
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

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}

// getEnvAsList parses a comma-separated env var, dropping empty entries.
func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
