// File: internal/services/ai/ollama_provider.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaProvider talks to a local Ollama runtime over its HTTP API
// (/api/chat for completions, /api/tags for model discovery).
type OllamaProvider struct {
	host       string
	httpClient *http.Client
	config     *Config
}

func NewOllamaProvider(config *Config) *OllamaProvider {
	return &OllamaProvider{
		host:   config.OllamaHost,
		config: config,
		httpClient: &http.Client{
			Timeout: config.LocalTimeout,
		},
	}
}

type ollamaChatRequest struct {
	Model    string                 `json:"model"`
	Messages []ChatMessage          `json:"messages"`
	Stream   bool                   `json:"stream"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done"`
}

type ollamaTagsResponse struct {
	Models []struct {
		Name       string    `json:"name"`
		Size       int64     `json:"size"`
		ModifiedAt time.Time `json:"modified_at"`
	} `json:"models"`
}

// Chat sends a non-streamed chat request to the local runtime.
func (p *OllamaProvider) Chat(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
		Options: map[string]interface{}{
			"temperature": p.config.Temperature,
			"top_p":       p.config.TopP,
		},
	})
	if err != nil {
		return "", NewProviderError("ollama", "chat", "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", NewProviderError("ollama", "chat", "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", Classify("ollama", "chat", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", Classify("ollama", "chat",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw)))
	}

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", NewProviderError("ollama", "chat", "failed to decode response", err)
	}
	if chatResp.Message.Content == "" {
		return "", NewProviderError("ollama", "chat", "empty chat response", nil)
	}

	return chatResp.Message.Content, nil
}

// ListModels returns the models available in the local runtime.
func (p *OllamaProvider) ListModels(ctx context.Context) ([]LocalModel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.host+"/api/tags", nil)
	if err != nil {
		return nil, NewProviderError("ollama", "list_models", "failed to build request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, Classify("ollama", "list_models", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, Classify("ollama", "list_models",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, NewProviderError("ollama", "list_models", "failed to decode response", err)
	}

	models := make([]LocalModel, 0, len(tags.Models))
	for _, m := range tags.Models {
		models = append(models, LocalModel{
			Name:       m.Name,
			Size:       m.Size,
			ModifiedAt: m.ModifiedAt,
		})
	}
	return models, nil
}

// Heartbeat checks that the runtime answers at all.
func (p *OllamaProvider) Heartbeat(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.host+"/api/tags", nil)
	if err != nil {
		return NewProviderError("ollama", "heartbeat", "failed to build request", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Classify("ollama", "heartbeat", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Classify("ollama", "heartbeat", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return nil
}
