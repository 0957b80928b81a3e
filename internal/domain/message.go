// File: internal/domain/message.go
package domain

import "time"

// Message roles. Insertion order is the conversation order; messages are
// immutable once appended.
const (
	MessageRoleUser = "user"
	MessageRoleBot  = "bot"
)

// Message represents a single message within a chat session.
type Message struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SessionID uint      `json:"session_id" gorm:"index;not null"`
	Role      string    `json:"role" gorm:"not null"` // "user" or "bot"
	Content   string    `json:"content" gorm:"not null"`
	Language  string    `json:"language" gorm:"default:en"`
	CreatedAt time.Time `json:"created_at"`
}
