// File: internal/services/ai/interface.go
package ai

import (
	"context"
	"time"
)

// ProviderStatus represents AI provider health
type ProviderStatus struct {
	CloudHealthy bool   `json:"cloud_healthy"`
	LocalHealthy bool   `json:"local_healthy"`
	LocalModels  int    `json:"local_models"`
	Message      string `json:"message"`
}

// LocalModel describes a model reported by the local runtime.
type LocalModel struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ChatMessage is a single turn sent to the local runtime.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionProvider handles single-prompt cloud completions.
type CompletionProvider interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// LocalRuntime handles the local model runtime (chat + model discovery).
type LocalRuntime interface {
	Chat(ctx context.Context, model string, messages []ChatMessage) (string, error)
	ListModels(ctx context.Context) ([]LocalModel, error)
	Heartbeat(ctx context.Context) error
}
