// File: internal/services/ai/selector.go
package ai

import (
	"fmt"
	"regexp"
	"strings"
)

// modelProfile carries the static capability scores for a known local model
// family, matched by case-insensitive substring on the model name.
type modelProfile struct {
	Match        string
	Base         float64
	Medical      float64
	Multilingual float64
	Speed        float64
}

// modelProfiles is ordered: ties in the computed total are broken by the
// first table entry that matched, not by sorting. The weights are tuned by
// hand; changing them changes which local model answers.
var modelProfiles = []modelProfile{
	{Match: "meditron", Base: 8.0, Medical: 9.5, Multilingual: 4.0, Speed: 5.0},
	{Match: "medllama", Base: 7.5, Medical: 9.0, Multilingual: 4.5, Speed: 5.5},
	{Match: "llama3", Base: 7.0, Medical: 6.5, Multilingual: 7.5, Speed: 6.0},
	{Match: "llama2", Base: 5.5, Medical: 5.0, Multilingual: 6.0, Speed: 6.5},
	{Match: "mistral", Base: 6.5, Medical: 6.0, Multilingual: 7.0, Speed: 7.5},
	{Match: "mixtral", Base: 7.5, Medical: 7.0, Multilingual: 8.0, Speed: 3.5},
	{Match: "gemma", Base: 6.0, Medical: 5.5, Multilingual: 6.5, Speed: 8.0},
	{Match: "qwen", Base: 6.0, Medical: 5.0, Multilingual: 8.5, Speed: 6.5},
	{Match: "phi", Base: 5.0, Medical: 4.5, Multilingual: 4.0, Speed: 9.0},
	{Match: "tinyllama", Base: 3.0, Medical: 2.5, Multilingual: 3.0, Speed: 9.5},
}

// complexityPattern flags queries that need the stronger medical models.
var complexityPattern = regexp.MustCompile(
	`(?i)\b(diagnos|differential|interact|contraindicat|dosage|pathophysiolog|prognos|etiolog|comorbid)`)

// Selection is the outcome of picking a local model.
type Selection struct {
	Model         string
	Score         float64
	Justification string
}

// SelectorConfig holds the configured preferences consulted before scoring.
type SelectorConfig struct {
	Preferred string   // substring; short-circuits scoring when available
	Fallbacks []string // ordered substrings tried after Preferred
}

// ModelSelector deterministically picks one local model for a query.
type ModelSelector struct {
	config SelectorConfig
}

func NewModelSelector(config SelectorConfig) *ModelSelector {
	return &ModelSelector{config: config}
}

// Select returns exactly one model from available, with a human-readable
// justification. Identical inputs always yield the identical selection.
func (s *ModelSelector) Select(available []string, query, language string) (Selection, error) {
	if len(available) == 0 {
		return Selection{}, NewProviderError("selector", "select", "no local models available", nil)
	}

	// 1. Configured preferred model wins outright.
	if s.config.Preferred != "" {
		if name := firstContaining(available, s.config.Preferred); name != "" {
			return Selection{
				Model:         name,
				Justification: fmt.Sprintf("configured preferred model %q is available", s.config.Preferred),
			}, nil
		}
	}

	// 2. Ordered configured fallbacks.
	for _, fb := range s.config.Fallbacks {
		if name := firstContaining(available, fb); name != "" {
			return Selection{
				Model:         name,
				Justification: fmt.Sprintf("configured fallback model %q is available", fb),
			}, nil
		}
	}

	// 3. Score everything against the static table.
	complex := isComplexQuery(query)
	nonEnglish := language != "" && language != "en"

	// Walk the table in order; ties keep the earlier table entry.
	best := Selection{Model: available[0], Justification: "no profile matched; defaulting to first available model"}
	bestScore := -1.0
	for _, profile := range modelProfiles {
		name := firstContaining(available, profile.Match)
		if name == "" {
			continue
		}
		score := profile.Base
		if complex {
			score += 0.3 * profile.Medical
		} else {
			score += 0.1 * profile.Speed
		}
		if nonEnglish {
			score += 0.2 * profile.Multilingual
		}
		if score > bestScore {
			bestScore = score
			best = Selection{
				Model: name,
				Score: score,
				Justification: fmt.Sprintf(
					"scored %.2f via %q profile (complex=%t, non_english=%t)",
					score, profile.Match, complex, nonEnglish),
			}
		}
	}

	return best, nil
}

// isComplexQuery is true for long queries or ones touching clinical depth.
func isComplexQuery(query string) bool {
	return len(query) > 100 || complexityPattern.MatchString(query)
}

func firstContaining(available []string, substr string) string {
	needle := strings.ToLower(substr)
	for _, name := range available {
		if strings.Contains(strings.ToLower(name), needle) {
			return name
		}
	}
	return ""
}
