// File: internal/services/chat/history.go
package chat

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/medibot-health/go-medibot/internal/domain"
	"github.com/medibot-health/go-medibot/internal/repository/message"
	"github.com/medibot-health/go-medibot/internal/repository/session"
)

// HistoryRecorder appends chat turns to a session, creating the session
// lazily on the first authenticated message. Recording is best-effort: a
// persistence failure is logged and swallowed, never surfaced to the caller,
// so the chat response goes out regardless.
type HistoryRecorder struct {
	config      *Config
	sessionRepo session.SessionRepository
	messageRepo message.MessageRepository
	logger      Logger
}

func NewHistoryRecorder(
	config *Config,
	sessionRepo session.SessionRepository,
	messageRepo message.MessageRepository,
	logger Logger,
) *HistoryRecorder {
	return &HistoryRecorder{
		config:      config,
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Record ensures a session exists for (userID, sessionID) and appends the
// user message then the bot message. Returns the session identifier the
// caller should continue with. Failures only reach the logs.
func (h *HistoryRecorder) Record(ctx context.Context, userID uint, sessionID, userMsg, botMsg, language string) string {
	if userID == 0 {
		// Anonymous chat: nothing to record.
		return sessionID
	}

	sess, err := h.ensureSession(ctx, userID, sessionID, userMsg, language)
	if err != nil {
		h.logger.Error("chat history not recorded", "user_id", userID, "error", err)
		return sessionID
	}

	// Two sequential appends, user first. A failure on the bot append leaves
	// the user message in place; conversation order is still correct.
	if _, err := h.messageRepo.Create(ctx, &domain.Message{
		SessionID: sess.ID,
		Role:      domain.MessageRoleUser,
		Content:   userMsg,
		Language:  language,
	}); err != nil {
		h.logger.Error("failed to save user message", "session_id", sess.ID, "error", err)
		return sess.SessionID
	}

	if _, err := h.messageRepo.Create(ctx, &domain.Message{
		SessionID: sess.ID,
		Role:      domain.MessageRoleBot,
		Content:   botMsg,
		Language:  language,
	}); err != nil {
		h.logger.Error("failed to save bot message", "session_id", sess.ID, "error", err)
		return sess.SessionID
	}

	if err := h.sessionRepo.TouchUpdatedAt(ctx, sess.ID); err != nil {
		h.logger.Warn("failed to touch session timestamp", "session_id", sess.ID, "error", err)
	}

	return sess.SessionID
}

// ensureSession is idempotent per (userID, sessionID). A blank sessionID
// gets a fresh UUID; the title comes from the first user message.
func (h *HistoryRecorder) ensureSession(ctx context.Context, userID uint, sessionID, firstMsg, language string) (*domain.ChatSession, error) {
	if sessionID != "" {
		sess, err := h.sessionRepo.FindBySessionID(ctx, userID, sessionID)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, session.ErrSessionNotFound) {
			return nil, NewPersistenceError("find_session", "session lookup failed", err)
		}
		// Unknown sessionID from the client: create it under that ID so
		// retries stay idempotent.
	} else {
		sessionID = uuid.NewString()
	}

	sess, err := h.sessionRepo.Create(ctx, &domain.ChatSession{
		SessionID: sessionID,
		UserID:    userID,
		Title:     TruncateText(firstMsg, h.config.TitleLength),
		Language:  language,
		IsActive:  true,
	})
	if err != nil {
		// A concurrent turn may have created it between lookup and insert.
		if existing, findErr := h.sessionRepo.FindBySessionID(ctx, userID, sessionID); findErr == nil {
			return existing, nil
		}
		return nil, NewPersistenceError("create_session", "session creation failed", err)
	}
	return sess, nil
}
