// File: cmd/diagnostic/provider_diagnostic.go
//
// Standalone probe for the AI provider chain. Run it on a box to see which
// tiers would answer before pointing the server at it:
//
//	go run ./cmd/diagnostic
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/medibot-health/go-medibot/internal/config"
	"github.com/medibot-health/go-medibot/internal/services/ai"
)

func main() {
	cfg := config.Load()

	aiConfig := &ai.Config{
		CloudKey:     cfg.GeminiAPIKey,
		CloudBaseURL: cfg.GeminiBaseURL,
		OllamaHost:   cfg.OllamaHost,
		CloudTimeout: time.Duration(cfg.CloudTimeoutSec) * time.Second,
		LocalTimeout: time.Duration(cfg.LocalTimeoutSec) * time.Second,
		Temperature:  0.2,
		TopP:         0.9,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("=== Provider Diagnostic ===")

	ok := true
	ok = probeCloud(ctx, aiConfig, cfg.GeminiPrimaryModel) && ok
	ok = probeLocal(ctx, aiConfig, cfg.OllamaPreferred, cfg.OllamaFallbacks) && ok

	if !ok {
		fmt.Println("\nOne or more tiers are unavailable. Chat still works: the canned tier always answers.")
		os.Exit(1)
	}
	fmt.Println("\nAll probed tiers are healthy.")
}

func probeCloud(ctx context.Context, aiConfig *ai.Config, model string) bool {
	fmt.Printf("\n[cloud] model=%s base=%s\n", model, aiConfig.CloudBaseURL)
	if aiConfig.CloudKey == "" {
		fmt.Println("[cloud] SKIP: GEMINI_API_KEY not set")
		return false
	}

	provider := ai.NewGeminiProvider(aiConfig)
	callCtx, cancel := context.WithTimeout(ctx, aiConfig.CloudTimeout)
	defer cancel()

	start := time.Now()
	reply, err := provider.Complete(callCtx, model, "Reply with the single word: pong")
	if err != nil {
		fmt.Printf("[cloud] FAIL after %v: %v\n", time.Since(start), err)
		if ai.IsQuota(err) {
			fmt.Println("[cloud] quota exhausted; the orchestrator would skip to the local tier")
		}
		return false
	}
	fmt.Printf("[cloud] OK in %v: %q\n", time.Since(start), firstLine(reply))
	return true
}

func probeLocal(ctx context.Context, aiConfig *ai.Config, preferred string, fallbacks []string) bool {
	fmt.Printf("\n[local] host=%s\n", aiConfig.OllamaHost)

	runtime := ai.NewOllamaProvider(aiConfig)
	if err := runtime.Heartbeat(ctx); err != nil {
		fmt.Printf("[local] FAIL: runtime unreachable: %v\n", err)
		return false
	}

	models, err := runtime.ListModels(ctx)
	if err != nil {
		fmt.Printf("[local] FAIL: cannot list models: %v\n", err)
		return false
	}
	fmt.Printf("[local] %d models installed\n", len(models))

	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
		fmt.Printf("[local]   - %s (%.1f GB)\n", m.Name, float64(m.Size)/1e9)
	}

	selector := ai.NewModelSelector(ai.SelectorConfig{Preferred: preferred, Fallbacks: fallbacks})
	for _, query := range []string{
		"I have a mild cold, what should I do?",
		"Explain the differential diagnosis for chest pain with dyspnea.",
	} {
		selection, err := selector.Select(names, query, "en")
		if err != nil {
			fmt.Printf("[local] FAIL: selector: %v\n", err)
			return false
		}
		fmt.Printf("[local] query %q -> %s (%s)\n", firstLine(query), selection.Model, selection.Justification)
	}

	chatCtx, cancel := context.WithTimeout(ctx, aiConfig.LocalTimeout)
	defer cancel()

	selection, _ := selector.Select(names, "ping", "en")
	start := time.Now()
	reply, err := runtime.Chat(chatCtx, selection.Model, []ai.ChatMessage{
		{Role: "user", Content: "Reply with the single word: pong"},
	})
	if err != nil {
		fmt.Printf("[local] FAIL after %v: %v\n", time.Since(start), err)
		return false
	}
	fmt.Printf("[local] OK in %v: %q\n", time.Since(start), firstLine(reply))
	return true
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
		if i > 60 {
			return s[:i] + "..."
		}
	}
	return s
}
