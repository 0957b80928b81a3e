// File: internal/handlers/ai_handler_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/medibot-health/go-medibot/internal/domain"
	"github.com/medibot-health/go-medibot/internal/repository/message"
	"github.com/medibot-health/go-medibot/internal/repository/session"
	"github.com/medibot-health/go-medibot/internal/services"
	"github.com/medibot-health/go-medibot/internal/services/ai"
	chatservice "github.com/medibot-health/go-medibot/internal/services/chat"
)

type stubCloud struct {
	reply string
	err   error
}

func (s *stubCloud) Complete(ctx context.Context, model, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type stubLocal struct {
	err error
}

func (s *stubLocal) Chat(ctx context.Context, model string, messages []ai.ChatMessage) (string, error) {
	return "", s.err
}

func (s *stubLocal) ListModels(ctx context.Context) ([]ai.LocalModel, error) {
	return nil, s.err
}

func (s *stubLocal) Heartbeat(ctx context.Context) error { return s.err }

func newChatHandler(t *testing.T, cloud *stubCloud, local *stubLocal) *AIHandler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ChatSession{}, &domain.Message{}))

	chatSvc, err := services.NewChatService(
		chatservice.DefaultConfig(),
		cloud,
		local,
		ai.NewModelSelector(ai.SelectorConfig{}),
		nil,
		nil,
		session.NewSessionRepository(db),
		message.NewMessageRepository(db),
	)
	require.NoError(t, err)

	return NewAIHandler(chatSvc, nil, nil)
}

func postChat(t *testing.T, h *AIHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chat", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChatEndpointCloudSuccess(t *testing.T) {
	h := newChatHandler(t, &stubCloud{reply: "Drink fluids and rest."}, &stubLocal{})

	rec := postChat(t, h, `{"message":"what should I do about a mild cold?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result services.ChatResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Drink fluids and rest.", result.Response)
	assert.Equal(t, chatservice.TierPrimary, result.Tier)
	assert.False(t, result.Fallback)
}

func TestChatEndpointNeverFailsOnProviderOutage(t *testing.T) {
	h := newChatHandler(t,
		&stubCloud{err: ai.Classify("gemini", "chat_completion", errors.New("connection refused"))},
		&stubLocal{err: errors.New("connection refused")},
	)

	rec := postChat(t, h, `{"message":"I feel dizzy"}`)

	require.Equal(t, http.StatusOK, rec.Code, "provider outages must not surface as 5xx")
	var result services.ChatResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, chatservice.TierCanned, result.Tier)
	assert.NotEmpty(t, result.Response)
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	h := newChatHandler(t, &stubCloud{reply: "ok"}, &stubLocal{})

	rec := postChat(t, h, `{"message":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEndpointRejectsBadJSON(t *testing.T) {
	h := newChatHandler(t, &stubCloud{reply: "ok"}, &stubLocal{})

	rec := postChat(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
