// File: internal/services/chat_service.go
package services

import (
	"context"
	"strings"

	"github.com/medibot-health/go-medibot/internal/domain"
	"github.com/medibot-health/go-medibot/internal/repository/message"
	"github.com/medibot-health/go-medibot/internal/repository/session"
	"github.com/medibot-health/go-medibot/internal/services/ai"
	chatservice "github.com/medibot-health/go-medibot/internal/services/chat"
	"github.com/medibot-health/go-medibot/internal/services/faq"
	"github.com/medibot-health/go-medibot/internal/services/search"
)

// ChatRequest is one inbound chat turn.
type ChatRequest struct {
	Message   string             `json:"message"`
	History   []chatservice.Turn `json:"history,omitempty"`
	Language  string             `json:"language,omitempty"`
	SessionID string             `json:"sessionId,omitempty"`
	UserID    uint               `json:"-"`
}

// ChatResult is what the chat endpoint returns. Response is always
// non-empty: the orchestrator bottoms out in a canned string.
type ChatResult struct {
	Response      string                     `json:"response"`
	SessionID     string                     `json:"sessionId,omitempty"`
	Tier          chatservice.Tier           `json:"tier"`
	Model         string                     `json:"model"`
	Fallback      bool                       `json:"fallback"`
	SearchUsed    bool                       `json:"searchUsed"`
	SearchResults []chatservice.SearchResult `json:"searchResults,omitempty"`
	FAQMatched    bool                       `json:"faqMatched"`
}

// ChatService wires the auxiliary lookups, the prompt builder, the fallback
// orchestrator, and the best-effort history recorder into one chat turn.
type ChatService struct {
	config       *chatservice.Config
	orchestrator *chatservice.FallbackOrchestrator
	prompts      *chatservice.PromptBuilder
	recorder     *chatservice.HistoryRecorder
	faqService   *faq.Service
	searchClient search.Provider // nil when no search key is configured
	sessionRepo  session.SessionRepository
	messageRepo  message.MessageRepository
	logger       Logger
}

func NewChatService(
	config *chatservice.Config,
	cloud ai.CompletionProvider,
	local ai.LocalRuntime,
	selector *ai.ModelSelector,
	faqService *faq.Service,
	searchClient search.Provider,
	sessionRepo session.SessionRepository,
	messageRepo message.MessageRepository,
) (*ChatService, error) {
	if cloud == nil || local == nil || selector == nil {
		return nil, chatservice.NewValidationError("constructor", "providers and selector are required")
	}
	if sessionRepo == nil || messageRepo == nil {
		return nil, chatservice.NewValidationError("constructor", "repositories are required")
	}
	if config == nil {
		config = chatservice.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, chatservice.NewValidationError("config", err.Error())
	}

	logger := NewLogger("chat")
	return &ChatService{
		config:       config,
		orchestrator: chatservice.NewFallbackOrchestrator(config, cloud, local, selector, chatservice.NewCannedResponder(), logger),
		prompts:      chatservice.NewPromptBuilder(config, logger),
		recorder:     chatservice.NewHistoryRecorder(config, sessionRepo, messageRepo, logger),
		faqService:   faqService,
		searchClient: searchClient,
		sessionRepo:  sessionRepo,
		messageRepo:  messageRepo,
		logger:       logger,
	}, nil
}

// Chat runs one turn end to end. It never returns a provider error; the
// only error cases are invalid input.
func (s *ChatService) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, chatservice.NewValidationError("chat", "message cannot be empty")
	}
	language := req.Language
	if language == "" {
		language = "en"
	}

	// Auxiliary lookups are conditional and best-effort.
	var faqEntries []chatservice.FAQEntry
	faqMatched := false
	if s.faqService != nil && faq.IsFAQLike(msg) {
		for _, f := range s.faqService.Lookup(ctx, msg) {
			faqEntries = append(faqEntries, chatservice.FAQEntry{Question: f.Question, Answer: f.Answer})
		}
		faqMatched = len(faqEntries) > 0
	}

	var searchResults []chatservice.SearchResult
	if s.searchClient != nil && search.IsSearchWorthy(msg) {
		results, err := s.searchClient.Search(ctx, msg, s.config.MaxSearch)
		if err != nil {
			s.logger.Warn("web search failed; continuing without search context", "error", err)
		}
		for _, r := range results {
			searchResults = append(searchResults, chatservice.SearchResult{
				Title: r.Title, URL: r.URL, Content: r.Content, Score: r.Score,
			})
		}
	}

	history := req.History
	if len(history) == 0 && req.UserID != 0 && req.SessionID != "" {
		history = s.loadHistory(ctx, req.UserID, req.SessionID)
	}

	prompt := s.prompts.Build(msg, language, history, searchResults, faqEntries)
	outcome := s.orchestrator.Respond(ctx, prompt, msg, language)

	// History is recorded even for canned-tier answers; failures stay in
	// the logs.
	sessionID := s.recorder.Record(ctx, req.UserID, req.SessionID, msg, outcome.Response, language)

	return &ChatResult{
		Response:      outcome.Response,
		SessionID:     sessionID,
		Tier:          outcome.Tier,
		Model:         outcome.Model,
		Fallback:      outcome.Fallback,
		SearchUsed:    len(searchResults) > 0,
		SearchResults: searchResults,
		FAQMatched:    faqMatched,
	}, nil
}

// loadHistory pulls the trailing turns of an existing session. Any failure
// just means the prompt goes out without history.
func (s *ChatService) loadHistory(ctx context.Context, userID uint, sessionID string) []chatservice.Turn {
	sess, err := s.sessionRepo.FindBySessionID(ctx, userID, sessionID)
	if err != nil {
		return nil
	}
	messages, err := s.messageRepo.FindRecent(ctx, sess.ID, s.config.HistoryTurns*2)
	if err != nil {
		return nil
	}
	turns := make([]chatservice.Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, chatservice.Turn{Role: m.Role, Content: m.Content})
	}
	return turns
}

// GetUserSessions lists the caller's active sessions.
func (s *ChatService) GetUserSessions(ctx context.Context, userID uint, limit, offset int) ([]domain.ChatSession, int64, error) {
	return s.sessionRepo.FindByUserID(ctx, userID, limit, offset)
}

// GetSessionMessages returns a session transcript after an ownership check.
func (s *ChatService) GetSessionMessages(ctx context.Context, userID uint, sessionID string) ([]domain.Message, error) {
	sess, err := s.sessionRepo.FindBySessionID(ctx, userID, sessionID)
	if err != nil {
		return nil, chatservice.NewUnauthorizedError(userID, sessionID)
	}
	return s.messageRepo.FindBySessionID(ctx, sess.ID)
}

// DeleteSession soft-deletes a session; the transcript stays on disk.
func (s *ChatService) DeleteSession(ctx context.Context, userID uint, sessionID string) error {
	sess, err := s.sessionRepo.FindBySessionID(ctx, userID, sessionID)
	if err != nil {
		return chatservice.NewUnauthorizedError(userID, sessionID)
	}
	return s.sessionRepo.Deactivate(ctx, sess.ID, userID)
}
