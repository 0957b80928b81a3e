// File: internal/services/ai/selector_test.go
package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPrefersConfiguredModel(t *testing.T) {
	selector := NewModelSelector(SelectorConfig{Preferred: "meditron"})

	sel, err := selector.Select([]string{"llama3:8b", "meditron:7b"}, "hello", "en")
	require.NoError(t, err)
	assert.Equal(t, "meditron:7b", sel.Model)
	assert.Contains(t, sel.Justification, "preferred")
}

func TestSelectWalksConfiguredFallbacks(t *testing.T) {
	selector := NewModelSelector(SelectorConfig{
		Preferred: "meditron",
		Fallbacks: []string{"mixtral", "llama3"},
	})

	sel, err := selector.Select([]string{"phi3:mini", "llama3:8b"}, "hello", "en")
	require.NoError(t, err)
	assert.Equal(t, "llama3:8b", sel.Model)
	assert.Contains(t, sel.Justification, "fallback")
}

func TestSelectScoresComplexMedicalQuery(t *testing.T) {
	selector := NewModelSelector(SelectorConfig{})
	available := []string{"phi3:mini", "meditron:7b", "gemma:2b"}

	// Complexity keyword pushes the medical-weighted profile to the top.
	sel, err := selector.Select(available, "what is the differential diagnosis for chest pain", "en")
	require.NoError(t, err)
	assert.Equal(t, "meditron:7b", sel.Model)
}

func TestSelectFavorsSpeedForSimpleQueries(t *testing.T) {
	selector := NewModelSelector(SelectorConfig{})

	sel, err := selector.Select([]string{"tinyllama:1b", "phi3:mini"}, "hi", "en")
	require.NoError(t, err)
	// phi: 5.0 + 0.1*9.0 = 5.9 beats tinyllama: 3.0 + 0.1*9.5 = 3.95
	assert.Equal(t, "phi3:mini", sel.Model)
}

func TestSelectIsDeterministic(t *testing.T) {
	selector := NewModelSelector(SelectorConfig{})
	available := []string{"qwen2:7b", "mistral:7b", "llama3:8b"}

	first, err := selector.Select(available, "latest dosage interactions for warfarin", "ta")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := selector.Select(available, "latest dosage interactions for warfarin", "ta")
		require.NoError(t, err)
		assert.Equal(t, first.Model, again.Model)
		assert.Equal(t, first.Justification, again.Justification)
	}
}

func TestSelectUnknownModelsDefaultToFirstAvailable(t *testing.T) {
	selector := NewModelSelector(SelectorConfig{})

	sel, err := selector.Select([]string{"custom-model:latest", "another:v2"}, "hello", "en")
	require.NoError(t, err)
	assert.Equal(t, "custom-model:latest", sel.Model)
	assert.Contains(t, sel.Justification, "defaulting")
}

func TestSelectFailsWithoutModels(t *testing.T) {
	selector := NewModelSelector(SelectorConfig{})

	_, err := selector.Select(nil, "hello", "en")
	require.Error(t, err)
}

func TestIsComplexQuery(t *testing.T) {
	assert.True(t, isComplexQuery("possible drug interactions with metformin"))
	assert.True(t, isComplexQuery(string(make([]byte, 101))))
	assert.False(t, isComplexQuery("I have a headache"))
}

func TestClassifyQuotaErrors(t *testing.T) {
	cases := []string{
		"googleapi: Error 429: Too Many Requests",
		"you have exceeded your quota",
		"rate limit reached for model",
	}
	for _, msg := range cases {
		perr := Classify("gemini", "completion", errors.New(msg))
		assert.Equal(t, KindQuota, perr.Kind, "message %q", msg)
		assert.True(t, IsQuota(perr))
	}
}

func TestClassifyGenericErrorIsTransient(t *testing.T) {
	perr := Classify("gemini", "completion", errors.New("connection refused"))
	assert.Equal(t, KindTransient, perr.Kind)
	assert.False(t, IsQuota(perr))
}
