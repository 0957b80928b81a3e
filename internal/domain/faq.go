// File: internal/domain/faq.go
package domain

import "time"

// FAQ is a curated question/answer record used to augment chat prompts.
type FAQ struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Question  string    `json:"question" gorm:"index;not null"`
	Answer    string    `json:"answer" gorm:"not null"`
	Category  string    `json:"category"`
	Language  string    `json:"language" gorm:"default:en"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
