// File: internal/services/search/config.go
package search

import (
	"fmt"
	"time"
)

type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxResults int
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("TAVILY_API_KEY is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("search base URL is required")
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "https://api.tavily.com",
		Timeout:    15 * time.Second,
		MaxResults: 5,
	}
}
