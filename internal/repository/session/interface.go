// File: internal/repository/session/interface.go
package session

import (
	"context"

	"github.com/medibot-health/go-medibot/internal/domain"
)

// SessionRepository handles chat-session data operations. Sessions are
// soft-deleted by flipping IsActive; rows are never removed.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.ChatSession) (*domain.ChatSession, error)
	FindByID(ctx context.Context, id uint) (*domain.ChatSession, error)
	FindBySessionID(ctx context.Context, userID uint, sessionID string) (*domain.ChatSession, error)
	FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]domain.ChatSession, int64, error)
	Deactivate(ctx context.Context, id uint, userID uint) error
	TouchUpdatedAt(ctx context.Context, id uint) error
}
