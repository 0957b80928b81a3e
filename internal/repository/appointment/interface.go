// File: internal/repository/appointment/interface.go
package appointment

import (
	"context"
	"time"

	"github.com/medibot-health/go-medibot/internal/domain"
)

// AppointmentRepository handles appointment data operations.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id uint) (*domain.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]domain.Appointment, error)
	FindBookedByDoctorAndDay(ctx context.Context, doctorID uint, dayStart, dayEnd time.Time) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}
