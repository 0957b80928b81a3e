// File: internal/handlers/session_handler.go
package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"

	"github.com/medibot-health/go-medibot/internal/domain"
	"github.com/medibot-health/go-medibot/internal/middleware"
	"github.com/medibot-health/go-medibot/internal/services"
)

// SessionHandler exposes chat-history endpoints. All routes require auth.
type SessionHandler struct {
	chatService *services.ChatService
	markdown    goldmark.Markdown
}

func NewSessionHandler(chatService *services.ChatService) *SessionHandler {
	return &SessionHandler{
		chatService: chatService,
		markdown:    goldmark.New(),
	}
}

// ListSessions handles GET /api/sessions?limit=&offset=.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	sessions, total, err := h.chatService.GetUserSessions(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

type renderedMessage struct {
	ID        uint   `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	HTML      string `json:"html,omitempty"`
	Language  string `json:"language"`
	CreatedAt string `json:"created_at"`
}

// GetMessages handles GET /api/sessions/{sessionId}/messages. With
// ?format=html each bot message also carries its markdown rendered to HTML
// for direct display.
func (h *SessionHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	messages, err := h.chatService.GetSessionMessages(r.Context(), userID, sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	if r.URL.Query().Get("format") != "html" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
		return
	}

	rendered := make([]renderedMessage, 0, len(messages))
	for _, m := range messages {
		rendered = append(rendered, h.render(m))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": rendered})
}

// DeleteSession handles DELETE /api/sessions/{sessionId}.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFrom(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.chatService.DeleteSession(r.Context(), userID, sessionID); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *SessionHandler) render(m domain.Message) renderedMessage {
	out := renderedMessage{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		Language:  m.Language,
		CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if m.Role == domain.MessageRoleBot {
		var buf bytes.Buffer
		if err := h.markdown.Convert([]byte(m.Content), &buf); err == nil {
			out.HTML = buf.String()
		}
	}
	return out
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
