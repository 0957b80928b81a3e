// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	// Cloud LLM Configuration (Gemini, OpenAI-compatible endpoint)
	CloudKey     string
	CloudBaseURL string

	// Local runtime Configuration (Ollama)
	OllamaHost string

	// Performance Configuration
	CloudTimeout time.Duration
	LocalTimeout time.Duration

	// Model Parameters
	Temperature float32
	TopP        float32
}

func (c *Config) Validate() error {
	if c.CloudKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.CloudBaseURL == "" {
		return fmt.Errorf("cloud base URL is required")
	}
	if c.OllamaHost == "" {
		return fmt.Errorf("ollama host is required")
	}
	if c.CloudTimeout <= 0 || c.LocalTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		CloudBaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
		OllamaHost:   "http://localhost:11434",
		CloudTimeout: 30 * time.Second,
		LocalTimeout: 60 * time.Second,
		Temperature:  0.2, // Low for medical accuracy
		TopP:         0.9,
	}
}
