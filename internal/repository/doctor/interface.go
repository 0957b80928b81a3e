// File: internal/repository/doctor/interface.go
package doctor

import (
	"context"

	"github.com/medibot-health/go-medibot/internal/domain"
)

// DoctorRepository handles doctor-profile data operations.
type DoctorRepository interface {
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	FindByID(ctx context.Context, id uint) (*domain.Doctor, error)
	FindAll(ctx context.Context) ([]domain.Doctor, error)
	FindBySpecialization(ctx context.Context, specialization string, limit int) ([]domain.Doctor, error)
}
