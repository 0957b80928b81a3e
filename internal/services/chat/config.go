// File: internal/services/chat/config.go
package chat

import (
	"fmt"
	"time"
)

type Config struct {
	// Fallback Configuration
	PrimaryModel     string        // first cloud candidate
	FallbackModels   []string      // remaining cloud candidates, in order
	CloudTimeout     time.Duration // per cloud candidate
	LocalTimeout     time.Duration // local-model tier
	QuotaDelay       time.Duration // pause after a quota-classified failure
	SkipCloudOnQuota bool          // abandon remaining cloud candidates after a quota failure

	// Context Assembly
	HistoryTurns int // prior turns included in the prompt
	MaxFAQ       int // FAQ records included in the prompt
	MaxSearch    int // web results included in the prompt

	// Session Configuration
	TitleLength int // session title from the first user message
}

func (c *Config) Validate() error {
	if c.PrimaryModel == "" {
		return fmt.Errorf("primary_model is required")
	}
	if c.CloudTimeout <= 0 || c.LocalTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.HistoryTurns <= 0 {
		return fmt.Errorf("history_turns must be positive")
	}
	if c.TitleLength <= 0 {
		return fmt.Errorf("title_length must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		PrimaryModel:     "gemini-1.5-flash",
		FallbackModels:   []string{"gemini-1.5-flash-8b", "gemini-1.0-pro"},
		CloudTimeout:     30 * time.Second,
		LocalTimeout:     60 * time.Second,
		QuotaDelay:       1 * time.Second,
		SkipCloudOnQuota: true,
		HistoryTurns:     5,
		MaxFAQ:           5,
		MaxSearch:        5,
		TitleLength:      50,
	}
}
