// File: internal/services/ai_service.go
package services

import (
	"context"
	"time"

	"github.com/medibot-health/go-medibot/internal/services/ai"
)

// AIService owns the provider clients for the process and reports their
// availability. Clients are constructed here once and injected everywhere
// else; nothing reaches for a package-level client.
type AIService struct {
	Cloud    ai.CompletionProvider
	Local    ai.LocalRuntime
	Selector *ai.ModelSelector

	cloudConfigured bool
	logger          Logger
}

func NewAIService(config *ai.Config, selectorConfig ai.SelectorConfig) (*AIService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &AIService{
		Cloud:           ai.NewGeminiProvider(config),
		Local:           ai.NewOllamaProvider(config),
		Selector:        ai.NewModelSelector(selectorConfig),
		cloudConfigured: config.CloudKey != "",
		logger:          NewLogger("ai"),
	}, nil
}

// Status snapshots provider availability. The cloud side is reported from
// configuration only; probing it would spend quota on every status call.
func (s *AIService) Status(ctx context.Context) ai.ProviderStatus {
	status := ai.ProviderStatus{
		CloudHealthy: s.cloudConfigured,
		Message:      "ok",
	}

	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.Local.Heartbeat(probeCtx); err != nil {
		s.logger.Debug("local runtime heartbeat failed", "error", err)
		status.Message = "local runtime unreachable"
		return status
	}

	status.LocalHealthy = true
	if models, err := s.Local.ListModels(probeCtx); err == nil {
		status.LocalModels = len(models)
	}
	return status
}
