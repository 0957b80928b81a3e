// File: internal/services/chat/fallback_test.go
package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibot-health/go-medibot/internal/services/ai"
)

type testLogger struct{}

func (testLogger) Info(msg string, keysAndValues ...interface{})  {}
func (testLogger) Error(msg string, keysAndValues ...interface{}) {}
func (testLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (testLogger) Warn(msg string, keysAndValues ...interface{})  {}

// fakeCloud fails every model in failing and answers the rest.
type fakeCloud struct {
	calls   []string
	failing map[string]error
}

func (f *fakeCloud) Complete(ctx context.Context, model, prompt string) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.failing[model]; ok {
		return "", err
	}
	return "cloud answer from " + model, nil
}

type fakeLocal struct {
	models    []string
	listErr   error
	chatErr   error
	chatCalls int
}

func (f *fakeLocal) Chat(ctx context.Context, model string, messages []ai.ChatMessage) (string, error) {
	f.chatCalls++
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return "local answer from " + model, nil
}

func (f *fakeLocal) ListModels(ctx context.Context) ([]ai.LocalModel, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]ai.LocalModel, 0, len(f.models))
	for _, name := range f.models {
		out = append(out, ai.LocalModel{Name: name})
	}
	return out, nil
}

func (f *fakeLocal) Heartbeat(ctx context.Context) error { return f.listErr }

func newTestOrchestrator(t *testing.T, cloud *fakeCloud, local *fakeLocal, mutate func(*Config)) *FallbackOrchestrator {
	t.Helper()
	config := DefaultConfig()
	config.PrimaryModel = "gemini-2.0-flash"
	config.FallbackModels = []string{"gemini-1.5-flash", "gemini-1.5-pro"}
	if mutate != nil {
		mutate(config)
	}
	require.NoError(t, config.Validate())
	return NewFallbackOrchestrator(config, cloud, local, ai.NewModelSelector(ai.SelectorConfig{}), NewCannedResponder(), testLogger{})
}

func quotaErr() error {
	return ai.Classify("gemini", "chat_completion", errors.New("429 Too Many Requests"))
}

func transientErr() error {
	return ai.Classify("gemini", "chat_completion", errors.New("connection reset"))
}

func TestRespondPrimarySucceeds(t *testing.T) {
	cloud := &fakeCloud{failing: map[string]error{}}
	local := &fakeLocal{models: []string{"llama3"}}
	o := newTestOrchestrator(t, cloud, local, nil)

	out := o.Respond(context.Background(), "prompt", "hello", "en")

	assert.Equal(t, TierPrimary, out.Tier)
	assert.Equal(t, "gemini-2.0-flash", out.Model)
	assert.False(t, out.Fallback)
	assert.Equal(t, []string{"gemini-2.0-flash"}, cloud.calls, "later candidates should not be called")
	assert.Zero(t, local.chatCalls)
}

func TestRespondFallsToSecondCloudModel(t *testing.T) {
	cloud := &fakeCloud{failing: map[string]error{"gemini-2.0-flash": transientErr()}}
	o := newTestOrchestrator(t, cloud, &fakeLocal{}, nil)

	out := o.Respond(context.Background(), "prompt", "hello", "en")

	assert.Equal(t, TierFallback, out.Tier)
	assert.Equal(t, "gemini-1.5-flash", out.Model)
	assert.True(t, out.Fallback)
	assert.Len(t, cloud.calls, 2)
}

func TestRespondFallsToLocal(t *testing.T) {
	cloud := &fakeCloud{failing: map[string]error{
		"gemini-2.0-flash": transientErr(),
		"gemini-1.5-flash": transientErr(),
		"gemini-1.5-pro":   transientErr(),
	}}
	local := &fakeLocal{models: []string{"llama3:8b"}}
	o := newTestOrchestrator(t, cloud, local, nil)

	out := o.Respond(context.Background(), "prompt", "hello", "en")

	assert.Equal(t, TierLocal, out.Tier)
	assert.Equal(t, "llama3:8b", out.Model)
	assert.True(t, out.Fallback)
	assert.Equal(t, 1, local.chatCalls)
}

func TestRespondAlwaysAnswers(t *testing.T) {
	cloud := &fakeCloud{failing: map[string]error{
		"gemini-2.0-flash": transientErr(),
		"gemini-1.5-flash": transientErr(),
		"gemini-1.5-pro":   transientErr(),
	}}
	local := &fakeLocal{listErr: errors.New("connection refused")}
	o := newTestOrchestrator(t, cloud, local, nil)

	out := o.Respond(context.Background(), "prompt", "something unanswerable", "en")

	assert.Equal(t, TierCanned, out.Tier)
	assert.True(t, out.Fallback)
	assert.NotEmpty(t, out.Response)
}

func TestRespondCannedMatchesLanguage(t *testing.T) {
	cloud := &fakeCloud{failing: map[string]error{
		"gemini-2.0-flash": transientErr(),
		"gemini-1.5-flash": transientErr(),
		"gemini-1.5-pro":   transientErr(),
	}}
	local := &fakeLocal{listErr: errors.New("connection refused")}
	o := newTestOrchestrator(t, cloud, local, nil)

	out := o.Respond(context.Background(), "prompt", "how do I book an appointment", "ta")

	assert.Equal(t, TierCanned, out.Tier)
	assert.Contains(t, out.Response, "முன்பதிவு")
}

func TestRespondQuotaSkipsRemainingCloudCandidates(t *testing.T) {
	cloud := &fakeCloud{failing: map[string]error{
		"gemini-2.0-flash": quotaErr(),
	}}
	local := &fakeLocal{models: []string{"llama3"}}
	o := newTestOrchestrator(t, cloud, local, func(c *Config) {
		c.SkipCloudOnQuota = true
	})

	out := o.Respond(context.Background(), "prompt", "hello", "en")

	assert.Equal(t, []string{"gemini-2.0-flash"}, cloud.calls,
		"quota on the primary should skip sibling cloud models")
	assert.Equal(t, TierLocal, out.Tier)
}

func TestRespondQuotaDelayPerCandidate(t *testing.T) {
	cloud := &fakeCloud{failing: map[string]error{
		"gemini-2.0-flash": quotaErr(),
		"gemini-1.5-flash": quotaErr(),
		"gemini-1.5-pro":   quotaErr(),
	}}
	local := &fakeLocal{models: []string{"llama3"}}
	o := newTestOrchestrator(t, cloud, local, func(c *Config) {
		c.SkipCloudOnQuota = false
		c.QuotaDelay = 10 * time.Millisecond
	})

	sleeps := 0
	o.sleep = func(d time.Duration) {
		sleeps++
		assert.Equal(t, 10*time.Millisecond, d)
	}

	out := o.Respond(context.Background(), "prompt", "hello", "en")

	assert.Len(t, cloud.calls, 3, "all cloud candidates are tried when skipping is off")
	assert.Equal(t, 3, sleeps, "one fixed delay per quota failure")
	assert.Equal(t, TierLocal, out.Tier)
}

func TestCloudCandidatesDedupePrimary(t *testing.T) {
	o := newTestOrchestrator(t, &fakeCloud{}, &fakeLocal{}, func(c *Config) {
		c.PrimaryModel = "gemini-2.0-flash"
		c.FallbackModels = []string{"gemini-2.0-flash", "gemini-1.5-pro"}
	})

	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-pro"}, o.cloudCandidates())
}
