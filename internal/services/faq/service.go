// File: internal/services/faq/service.go
package faq

import (
	"context"
	"strings"

	"github.com/medibot-health/go-medibot/internal/domain"
	faqrepo "github.com/medibot-health/go-medibot/internal/repository/faq"
)

// Logger matches the shared key/value logging interface.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// faqTriggers classify a query as FAQ-like. Symptom descriptions do not
// match; only how-to and definition phrasing does.
var faqTriggers = []string{
	"how do i",
	"how can i",
	"how to",
	"what is",
	"what are",
	"where can i",
	"can i cancel",
	"can i change",
	"do you support",
}

const maxFAQResults = 5

// Service retrieves FAQ records to fold into the chat prompt.
type Service struct {
	repo   faqrepo.FAQRepository
	logger Logger
}

func NewService(repo faqrepo.FAQRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// IsFAQLike reports whether the query contains an FAQ trigger phrase.
func IsFAQLike(query string) bool {
	lower := strings.ToLower(query)
	for _, trigger := range faqTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// Lookup runs the indexed text search and degrades to a plain substring
// search if that fails. A lookup failure yields an empty slice, never an
// error; the chat can proceed without FAQ context.
func (s *Service) Lookup(ctx context.Context, query string) []domain.FAQ {
	faqs, err := s.repo.Search(ctx, query, maxFAQResults)
	if err != nil {
		s.logger.Warn("faq text search failed; falling back to substring search", "error", err)
		faqs, err = s.repo.SearchLike(ctx, query, maxFAQResults)
		if err != nil {
			s.logger.Error("faq fallback search failed", "error", err)
			return nil
		}
	}
	return faqs
}
