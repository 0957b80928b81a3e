// File: internal/services/faq/service_test.go
package faq

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/medibot-health/go-medibot/internal/domain"
	faqrepo "github.com/medibot-health/go-medibot/internal/repository/faq"
)

type testLogger struct{}

func (testLogger) Info(msg string, keysAndValues ...interface{})  {}
func (testLogger) Error(msg string, keysAndValues ...interface{}) {}
func (testLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (testLogger) Warn(msg string, keysAndValues ...interface{})  {}

func TestIsFAQLike(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"How do I book an appointment?", true},
		{"what is the cancellation policy", true},
		{"Can I cancel my booking?", true},
		{"where can I see my prescriptions", true},
		{"I have chest pain", false},
		{"my knee hurts after running", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsFAQLike(tt.query), "query %q", tt.query)
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.FAQ{}))

	seed := []domain.FAQ{
		{Question: "How do I book an appointment?", Answer: "Open the Appointments page and pick a slot."},
		{Question: "How do I cancel an appointment?", Answer: "Open My Appointments and choose cancel."},
		{Question: "What payment methods are supported?", Answer: "Card and UPI."},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	return NewService(faqrepo.NewFAQRepository(db), testLogger{})
}

func TestLookupFindsMatches(t *testing.T) {
	s := newTestService(t)

	faqs := s.Lookup(context.Background(), "how do I book an appointment")

	require.NotEmpty(t, faqs)
	assert.Equal(t, "How do I book an appointment?", faqs[0].Question)
}

func TestLookupNoMatchReturnsEmpty(t *testing.T) {
	s := newTestService(t)

	faqs := s.Lookup(context.Background(), "zzzz qqqq xxxx")

	assert.Empty(t, faqs)
}
