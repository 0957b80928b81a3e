// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/medibot-health/go-medibot/internal/domain"
	"gorm.io/gorm"
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if message.SessionID == 0 {
		return nil, errors.New("message requires a session ID")
	}
	if message.Role != domain.MessageRoleUser && message.Role != domain.MessageRoleBot {
		return nil, errors.New("message role must be user or bot")
	}
	if strings.TrimSpace(message.Content) == "" {
		return nil, errors.New("message content cannot be empty")
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		log.Printf("[MessageRepository] Database error creating message in session %d: %v", message.SessionID, err)
		return nil, errors.New("database error creating message")
	}
	return message, nil
}

func (r *gormMessageRepository) FindBySessionID(ctx context.Context, sessionID uint) ([]domain.Message, error) {
	if sessionID == 0 {
		return nil, errors.New("invalid session ID")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching messages for session %d: %v", sessionID, err)
		return nil, errors.New("database error fetching messages")
	}
	return messages, nil
}

// FindRecent returns the last limit messages in conversation order.
func (r *gormMessageRepository) FindRecent(ctx context.Context, sessionID uint, limit int) ([]domain.Message, error) {
	if sessionID == 0 {
		return nil, errors.New("invalid session ID")
	}
	if limit <= 0 {
		limit = 10
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching recent messages for session %d: %v", sessionID, err)
		return nil, errors.New("database error fetching messages")
	}

	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *gormMessageRepository) CountBySessionID(ctx context.Context, sessionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		return 0, errors.New("database error counting messages")
	}
	return count, nil
}
