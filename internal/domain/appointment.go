// File: internal/domain/appointment.go
package domain

import "time"

// Appointment statuses.
const (
	AppointmentBooked    = "booked"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment is a booked consultation slot between a patient and a doctor.
type Appointment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PatientID uint      `json:"patient_id" gorm:"index;not null"`
	DoctorID  uint      `json:"doctor_id" gorm:"index;not null"`
	StartsAt  time.Time `json:"starts_at" gorm:"index;not null"`
	EndsAt    time.Time `json:"ends_at" gorm:"not null"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status" gorm:"not null;default:booked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Overlaps reports whether the appointment intersects [start, end).
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartsAt.Before(end) && start.Before(a.EndsAt)
}
