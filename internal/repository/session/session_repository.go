// File: internal/repository/session/session_repository.go
package session

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/medibot-health/go-medibot/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnauthorizedAccess = errors.New("unauthorized access to session")
)

type gormSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &gormSessionRepository{db: db}
}

func (r *gormSessionRepository) Create(ctx context.Context, s *domain.ChatSession) (*domain.ChatSession, error) {
	if s.UserID == 0 {
		return nil, errors.New("session requires a user ID")
	}
	if strings.TrimSpace(s.SessionID) == "" {
		return nil, errors.New("session requires a session ID")
	}

	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		log.Printf("[SessionRepository] Database error creating session for user ID %d: %v", s.UserID, err)
		return nil, errors.New("database error creating session")
	}

	log.Printf("[SessionRepository] Session created: ID %d for user %d", s.ID, s.UserID)
	return s, nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, id uint) (*domain.ChatSession, error) {
	if id == 0 {
		return nil, errors.New("invalid session ID")
	}

	var s domain.ChatSession
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		log.Printf("[SessionRepository] Database error finding session ID %d: %v", id, err)
		return nil, errors.New("database error finding session")
	}
	return &s, nil
}

func (r *gormSessionRepository) FindBySessionID(ctx context.Context, userID uint, sessionID string) (*domain.ChatSession, error) {
	if userID == 0 || sessionID == "" {
		return nil, errors.New("invalid user or session ID")
	}

	var s domain.ChatSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ? AND is_active = ?", userID, sessionID, true).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		log.Printf("[SessionRepository] Database error finding session %q for user ID %d: %v", sessionID, userID, err)
		return nil, errors.New("database error finding session")
	}
	return &s, nil
}

func (r *gormSessionRepository) FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]domain.ChatSession, int64, error) {
	if userID == 0 {
		return nil, 0, errors.New("invalid user ID")
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var total int64
	query := r.db.WithContext(ctx).Model(&domain.ChatSession{}).
		Where("user_id = ? AND is_active = ?", userID, true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.New("database error counting sessions")
	}

	var sessions []domain.ChatSession
	err := query.
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	if err != nil {
		log.Printf("[SessionRepository] Database error listing sessions for user ID %d: %v", userID, err)
		return nil, 0, errors.New("database error fetching sessions")
	}

	return sessions, total, nil
}

// Deactivate soft-deletes a session; messages stay in place.
func (r *gormSessionRepository) Deactivate(ctx context.Context, id, userID uint) error {
	if id == 0 || userID == 0 {
		return errors.New("invalid session or user ID")
	}

	result := r.db.WithContext(ctx).Model(&domain.ChatSession{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("[SessionRepository] Database error deactivating session ID %d: %v", id, result.Error)
		return errors.New("database error deactivating session")
	}
	if result.RowsAffected == 0 {
		return ErrUnauthorizedAccess
	}
	return nil
}

func (r *gormSessionRepository) TouchUpdatedAt(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("invalid session ID")
	}

	result := r.db.WithContext(ctx).Model(&domain.ChatSession{}).
		Where("id = ?", id).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		log.Printf("[SessionRepository] Database error touching session ID %d: %v", id, result.Error)
		return errors.New("database error updating session timestamp")
	}
	return nil
}
