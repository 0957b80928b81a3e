// File: internal/services/chat/canned_test.go
package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCannedResponderNeverEmpty(t *testing.T) {
	c := NewCannedResponder()

	queries := []string{
		"how do I book an appointment",
		"I have chest pain",
		"what is the consultation fee",
		"tell me about quantum entanglement",
		"",
	}
	for _, q := range queries {
		assert.NotEmpty(t, c.Respond(q, "en"), "query %q", q)
		assert.NotEmpty(t, c.Respond(q, "ta"), "query %q", q)
	}
}

func TestCannedResponderKeywordMatch(t *testing.T) {
	c := NewCannedResponder()

	assert.Contains(t, c.Respond("can I schedule a visit", "en"), "Appointments page")
	assert.Contains(t, c.Respond("severe chest pain right now", "en"), "emergency")
	assert.Contains(t, c.Respond("what is the price of a consultation", "en"), "fees")
}

func TestCannedResponderUnknownQueryIsBilingual(t *testing.T) {
	c := NewCannedResponder()

	reply := c.Respond("completely unrelated question", "en")
	assert.Contains(t, reply, cannedDefaultEnglish)
	assert.Contains(t, reply, cannedDefaultTamil)

	tamilFirst := c.Respond("completely unrelated question", "ta")
	assert.True(t, len(tamilFirst) > 0)
	assert.Contains(t, tamilFirst, cannedDefaultTamil)
}
