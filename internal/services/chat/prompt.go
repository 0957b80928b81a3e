// File: internal/services/chat/prompt.go
package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const personaInstructions = `You are MediBot, a careful medical assistant for a patient-doctor platform.
You answer general health questions, explain symptoms and treatments in plain
terms, and help patients decide which specialist to see. You never give a
definitive diagnosis and you recommend seeing a doctor for anything urgent.`

const closingInstructions = `Formatting rules:
- Keep the answer short and conversational; avoid heavy markdown.
- Use at most a few bullet points, no tables, no headings.
- End with a single-sentence safety note when the topic is clinical.`

// tamilVocabularyHints supplements the generic language instruction for
// Tamil only. No other language gets bespoke hints; that asymmetry comes
// from the product's user base and is intentional.
const tamilVocabularyHints = `Use these Tamil terms where they fit:
மருத்துவர் (doctor), அறிகுறி (symptom), சிகிச்சை (treatment),
மருந்து (medicine), முன்பதிவு (appointment).`

// PromptBuilder assembles the single prompt string sent to whichever
// provider is about to be called. Composition order is fixed; there is no
// token budgeting, so oversized prompts surface as provider errors and ride
// the orchestrator's generic failure path.
type PromptBuilder struct {
	config *Config
	logger Logger
}

func NewPromptBuilder(config *Config, logger Logger) *PromptBuilder {
	return &PromptBuilder{config: config, logger: logger}
}

// Build concatenates, in order: persona, language instructions, optional
// web-search block, optional FAQ block, trailing history turns, the current
// message, closing instructions.
func (b *PromptBuilder) Build(message, language string, history []Turn, search []SearchResult, faqs []FAQEntry) string {
	var p strings.Builder

	p.WriteString(personaInstructions)
	p.WriteString("\n\n")

	b.writeLanguageBlock(&p, language)
	b.writeSearchBlock(&p, search)
	b.writeFAQBlock(&p, faqs)
	b.writeHistoryBlock(&p, history)

	p.WriteString("Current patient message:\n")
	p.WriteString(strings.TrimSpace(message))
	p.WriteString("\n\n")
	p.WriteString(closingInstructions)

	prompt := p.String()
	b.logger.Debug("prompt assembled",
		"length", len(prompt),
		"history_turns", len(history),
		"search_results", len(search),
		"faq_entries", len(faqs),
	)
	return prompt
}

func (b *PromptBuilder) writeLanguageBlock(p *strings.Builder, language string) {
	if language == "" || language == "en" {
		return
	}
	fmt.Fprintf(p, "Respond in the language with code %q.\n", language)
	if language == "ta" {
		p.WriteString(tamilVocabularyHints)
		p.WriteString("\n")
	}
	p.WriteString("\n")
}

func (b *PromptBuilder) writeSearchBlock(p *strings.Builder, results []SearchResult) {
	if len(results) == 0 {
		return
	}
	if len(results) > b.config.MaxSearch {
		results = results[:b.config.MaxSearch]
	}

	p.WriteString("Recent web results relevant to the question. Cite the source domain when you use one:\n")
	for i, r := range results {
		fmt.Fprintf(p, "%d. %s (%s): %s\n", i+1, r.Title, domainOf(r.URL), TruncateText(r.Content, 300))
	}
	p.WriteString("\n")
}

func (b *PromptBuilder) writeFAQBlock(p *strings.Builder, faqs []FAQEntry) {
	if len(faqs) == 0 {
		return
	}
	if len(faqs) > b.config.MaxFAQ {
		faqs = faqs[:b.config.MaxFAQ]
	}

	p.WriteString("Platform FAQ entries that may answer the question directly:\n")
	for _, f := range faqs {
		fmt.Fprintf(p, "Q: %s\nA: %s\n", f.Question, f.Answer)
	}
	p.WriteString("\n")
}

func (b *PromptBuilder) writeHistoryBlock(p *strings.Builder, history []Turn) {
	if len(history) == 0 {
		return
	}
	if len(history) > b.config.HistoryTurns {
		history = history[len(history)-b.config.HistoryTurns:]
	}

	p.WriteString("Conversation so far:\n")
	for _, turn := range history {
		fmt.Fprintf(p, "%s: %s\n", turn.Role, turn.Content)
	}
	p.WriteString("\n")
}

// domainOf strips a URL down to its host for citation display.
func domainOf(url string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	if idx := strings.IndexByte(s, '/'); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimPrefix(s, "www.")
}

// TruncateText safely truncates a UTF-8 string to maxLen runes.
func TruncateText(input string, maxLen int) string {
	if input == "" || maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(input) <= maxLen {
		return input
	}

	var b strings.Builder
	count := 0
	for _, r := range input {
		if count >= maxLen {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}
