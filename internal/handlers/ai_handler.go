// File: internal/handlers/ai_handler.go
package handlers

import (
	"net/http"

	"github.com/medibot-health/go-medibot/internal/middleware"
	"github.com/medibot-health/go-medibot/internal/services"
	"github.com/medibot-health/go-medibot/internal/services/triage"
)

// AIHandler exposes the chat, doctor-recommendation, and provider-status
// endpoints. Provider failures never surface as 5xx from /chat: the
// orchestrator always has an answer.
type AIHandler struct {
	chatService   *services.ChatService
	aiService     *services.AIService
	triageService *triage.Service
}

func NewAIHandler(chatService *services.ChatService, aiService *services.AIService, triageService *triage.Service) *AIHandler {
	return &AIHandler{
		chatService:   chatService,
		aiService:     aiService,
		triageService: triageService,
	}
}

// Chat handles POST /api/ai/chat. Works for anonymous callers too; only
// authenticated requests get history persistence.
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req services.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.UserID = middleware.UserIDFrom(r.Context())

	result, err := h.chatService.Chat(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type recommendRequest struct {
	Symptoms []string `json:"symptoms"`
	Age      int      `json:"age"`
	Gender   string   `json:"gender"`
	Urgency  string   `json:"urgency"`
}

// RecommendDoctor handles POST /api/ai/recommend-doctor.
func (h *AIHandler) RecommendDoctor(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.triageService.Recommend(r.Context(), req.Symptoms, req.Age, req.Gender, req.Urgency)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Status handles GET /api/ai/status.
func (h *AIHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.aiService.Status(r.Context()))
}
