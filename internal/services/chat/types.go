// File: internal/services/chat/types.go
package chat

// Logger defines the logging interface used across chat services
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Tier names one stage of the fallback sequence.
type Tier string

const (
	TierPrimary  Tier = "primary"
	TierFallback Tier = "cloud_fallback"
	TierLocal    Tier = "local"
	TierCanned   Tier = "canned"
)

// Turn is one prior exchange line included in the prompt.
type Turn struct {
	Role    string // "user" or "bot"
	Content string
}

// SearchResult is a filtered web-search hit included in the prompt.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// FAQEntry is a question/answer pair included in the prompt.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Outcome is what the orchestrator hands back: which tier and model answered.
type Outcome struct {
	Response string
	Tier     Tier
	Model    string
	Fallback bool // true when any non-primary tier produced the answer
}
