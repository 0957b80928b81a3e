// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/medibot-health/go-medibot/internal/domain"
)

// MessageRepository handles message data operations. Messages are append-only:
// there is deliberately no Update on this interface.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindBySessionID(ctx context.Context, sessionID uint) ([]domain.Message, error)
	FindRecent(ctx context.Context, sessionID uint, limit int) ([]domain.Message, error)
	CountBySessionID(ctx context.Context, sessionID uint) (int64, error)
}
