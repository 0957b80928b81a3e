// File: internal/services/chat/prompt_test.go
package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPromptBuilder() *PromptBuilder {
	return NewPromptBuilder(DefaultConfig(), testLogger{})
}

func TestBuildOrdering(t *testing.T) {
	b := newTestPromptBuilder()

	prompt := b.Build(
		"Should I worry about my blood pressure?",
		"ta",
		[]Turn{{Role: "user", Content: "hi"}, {Role: "bot", Content: "hello"}},
		[]SearchResult{{Title: "BP guidance", URL: "https://www.nih.gov/bp", Content: "Blood pressure basics."}},
		[]FAQEntry{{Question: "How do I book?", Answer: "Use the Appointments page."}},
	)

	positions := []int{
		strings.Index(prompt, "You are MediBot"),
		strings.Index(prompt, `language with code "ta"`),
		strings.Index(prompt, "Recent web results"),
		strings.Index(prompt, "Platform FAQ entries"),
		strings.Index(prompt, "Conversation so far:"),
		strings.Index(prompt, "Current patient message:"),
		strings.Index(prompt, "Formatting rules:"),
	}
	for i, pos := range positions {
		assert.GreaterOrEqual(t, pos, 0, "section %d missing", i)
		if i > 0 {
			assert.Greater(t, pos, positions[i-1], "section %d out of order", i)
		}
	}
}

func TestBuildOmitsEmptySections(t *testing.T) {
	b := newTestPromptBuilder()

	prompt := b.Build("What is a fever?", "en", nil, nil, nil)

	assert.NotContains(t, prompt, "Recent web results")
	assert.NotContains(t, prompt, "Platform FAQ entries")
	assert.NotContains(t, prompt, "Conversation so far:")
	assert.NotContains(t, prompt, "language with code")
	assert.Contains(t, prompt, "What is a fever?")
}

func TestBuildTamilGetsVocabularyHints(t *testing.T) {
	b := newTestPromptBuilder()

	tamil := b.Build("question", "ta", nil, nil, nil)
	hindi := b.Build("question", "hi", nil, nil, nil)

	assert.Contains(t, tamil, "மருத்துவர்")
	assert.NotContains(t, hindi, "மருத்துவர்")
	assert.Contains(t, hindi, `language with code "hi"`)
}

func TestBuildTruncatesHistory(t *testing.T) {
	b := newTestPromptBuilder()

	var history []Turn
	for i := 0; i < 12; i++ {
		history = append(history, Turn{Role: "user", Content: "turn"})
	}
	history[0].Content = "oldest turn"
	history[len(history)-1].Content = "newest turn"

	prompt := b.Build("question", "en", history, nil, nil)

	assert.NotContains(t, prompt, "oldest turn")
	assert.Contains(t, prompt, "newest turn")
}

func TestBuildCitesSearchDomain(t *testing.T) {
	b := newTestPromptBuilder()

	prompt := b.Build("question", "en", nil, []SearchResult{
		{Title: "Study", URL: "https://www.cdc.gov/flu/index.html", Content: "Flu facts."},
	}, nil)

	assert.Contains(t, prompt, "(cdc.gov)")
}

func TestDomainOf(t *testing.T) {
	assert.Equal(t, "nih.gov", domainOf("https://www.nih.gov/health/topic"))
	assert.Equal(t, "mayoclinic.org", domainOf("http://mayoclinic.org"))
	assert.Equal(t, "who.int", domainOf("who.int/news"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "", TruncateText("", 10))
	assert.Equal(t, "", TruncateText("hello", 0))
	assert.Equal(t, "hello", TruncateText("hello", 10))
	assert.Equal(t, "hel", TruncateText("hello", 3))
	// Multi-byte runes are never split.
	assert.Equal(t, "மரு", TruncateText("மருத்துவர்", 3))
}
