// File: internal/services/chat/fallback.go
package chat

import (
	"context"
	"time"

	"github.com/medibot-health/go-medibot/internal/services/ai"
)

// FallbackOrchestrator walks the tier sequence (primary cloud model,
// configured cloud fallbacks, a selector-picked local model, then the canned
// responder) and returns the first answer it gets. It never returns an
// error: the canned tier cannot fail, so every caller gets a non-empty reply.
type FallbackOrchestrator struct {
	config   *Config
	cloud    ai.CompletionProvider
	local    ai.LocalRuntime
	selector *ai.ModelSelector
	canned   *CannedResponder
	logger   Logger

	// test seam; production uses time.Sleep
	sleep func(time.Duration)
}

func NewFallbackOrchestrator(
	config *Config,
	cloud ai.CompletionProvider,
	local ai.LocalRuntime,
	selector *ai.ModelSelector,
	canned *CannedResponder,
	logger Logger,
) *FallbackOrchestrator {
	return &FallbackOrchestrator{
		config:   config,
		cloud:    cloud,
		local:    local,
		selector: selector,
		canned:   canned,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// Respond produces a reply for the assembled prompt. query and language feed
// the local model selector and the canned responder; prompt is what the
// providers actually see.
func (o *FallbackOrchestrator) Respond(ctx context.Context, prompt, query, language string) Outcome {
	candidates := o.cloudCandidates()

	quotaSeen := false
	for i, model := range candidates {
		if quotaSeen && o.config.SkipCloudOnQuota {
			o.logger.Warn("skipping remaining cloud candidates after quota failure",
				"skipped_from", model)
			break
		}

		reply, err := o.tryCloud(ctx, model, prompt)
		if err == nil {
			tier := TierPrimary
			if i > 0 {
				tier = TierFallback
			}
			return Outcome{Response: reply, Tier: tier, Model: model, Fallback: i > 0}
		}

		if ai.IsQuota(err) {
			quotaSeen = true
			if i == 0 {
				o.logger.Warn("primary model hit quota; later candidates share the same project quota",
					"model", model)
			}
			// Primitive fixed backoff after every quota failure.
			if !o.config.SkipCloudOnQuota {
				o.sleep(o.config.QuotaDelay)
			}
		}
		o.logger.Error("cloud candidate failed", "model", model, "error", err)
	}

	if outcome, ok := o.tryLocal(ctx, prompt, query, language); ok {
		return outcome
	}

	// Tier 4 cannot fail.
	o.logger.Warn("all providers failed; serving canned response")
	return Outcome{
		Response: o.canned.Respond(query, language),
		Tier:     TierCanned,
		Model:    "static",
		Fallback: true,
	}
}

// cloudCandidates builds the ordered cloud list: primary first, then the
// configured fallbacks minus any duplicate of the primary.
func (o *FallbackOrchestrator) cloudCandidates() []string {
	candidates := []string{o.config.PrimaryModel}
	for _, m := range o.config.FallbackModels {
		if m != o.config.PrimaryModel {
			candidates = append(candidates, m)
		}
	}
	return candidates
}

func (o *FallbackOrchestrator) tryCloud(ctx context.Context, model, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.config.CloudTimeout)
	defer cancel()
	return o.cloud.Complete(callCtx, model, prompt)
}

func (o *FallbackOrchestrator) tryLocal(ctx context.Context, prompt, query, language string) (Outcome, bool) {
	listCtx, cancel := context.WithTimeout(ctx, o.config.LocalTimeout)
	defer cancel()

	models, err := o.local.ListModels(listCtx)
	if err != nil {
		o.logger.Error("local runtime unreachable", "error", err)
		return Outcome{}, false
	}

	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}

	selection, err := o.selector.Select(names, query, language)
	if err != nil {
		o.logger.Error("no local model selectable", "error", err)
		return Outcome{}, false
	}
	o.logger.Info("local model selected",
		"model", selection.Model, "justification", selection.Justification)

	chatCtx, cancelChat := context.WithTimeout(ctx, o.config.LocalTimeout)
	defer cancelChat()

	reply, err := o.local.Chat(chatCtx, selection.Model, []ai.ChatMessage{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		o.logger.Error("local model failed", "model", selection.Model, "error", err)
		return Outcome{}, false
	}

	return Outcome{Response: reply, Tier: TierLocal, Model: selection.Model, Fallback: true}, true
}
