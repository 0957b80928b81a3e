// File: internal/services/ai/gemini_provider.go
package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// GeminiProvider issues chat completions against Gemini's OpenAI-compatible
// endpoint. One client instance per process, injected by the composition root.
type GeminiProvider struct {
	config *Config
	client *openai.Client
}

func NewGeminiProvider(config *Config) *GeminiProvider {
	clientConfig := openai.DefaultConfig(config.CloudKey)
	clientConfig.BaseURL = config.CloudBaseURL
	return &GeminiProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// Complete returns a non-streamed reply for the prompt. Every failure comes
// back as a kind-classified *ProviderError.
func (p *GeminiProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: p.config.Temperature,
			TopP:        p.config.TopP,
		},
	)
	if err != nil {
		return "", Classify("gemini", "completion", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", NewProviderError("gemini", "completion", "empty completion response", nil)
	}

	return resp.Choices[0].Message.Content, nil
}
