// File: internal/domain/session.go
package domain

import "time"

// ChatSession represents a single conversation thread owned by one user.
// Sessions are created lazily on the first authenticated message and are
// soft-deleted via IsActive, never hard-deleted.
type ChatSession struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SessionID string    `json:"session_id" gorm:"uniqueIndex;not null"` // client-visible UUID
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title"` // derived from the first user message
	Language  string    `json:"language" gorm:"default:en"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
