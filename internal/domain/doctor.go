// File: internal/domain/doctor.go
package domain

import "time"

// Doctor is the public profile behind a doctor-role user.
type Doctor struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	UserID          uint      `json:"user_id" gorm:"index"`
	Name            string    `json:"name" gorm:"not null"`
	Specialization  string    `json:"specialization" gorm:"index;not null"`
	Experience      int       `json:"experience"` // years
	ConsultationFee int       `json:"consultation_fee"`
	Rating          float64   `json:"rating"`
	IsAvailable     bool      `json:"is_available" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
