// File: internal/repository/appointment/appointment_repository.go
package appointment

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/medibot-health/go-medibot/internal/domain"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type gormAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &gormAppointmentRepository{db: db}
}

func (r *gormAppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if a.PatientID == 0 || a.DoctorID == 0 {
		return nil, errors.New("appointment requires patient and doctor IDs")
	}
	if !a.StartsAt.Before(a.EndsAt) {
		return nil, errors.New("appointment must start before it ends")
	}

	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		log.Printf("[AppointmentRepository] Database error creating appointment for patient %d: %v", a.PatientID, err)
		return nil, errors.New("database error creating appointment")
	}
	return a, nil
}

func (r *gormAppointmentRepository) FindByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	if id == 0 {
		return nil, errors.New("invalid appointment ID")
	}

	var a domain.Appointment
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		log.Printf("[AppointmentRepository] Database error finding appointment ID %d: %v", id, err)
		return nil, errors.New("database error finding appointment")
	}
	return &a, nil
}

func (r *gormAppointmentRepository) FindByPatientID(ctx context.Context, patientID uint) ([]domain.Appointment, error) {
	if patientID == 0 {
		return nil, errors.New("invalid patient ID")
	}

	var appointments []domain.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("starts_at DESC").
		Find(&appointments).Error
	if err != nil {
		log.Printf("[AppointmentRepository] Database error listing appointments for patient %d: %v", patientID, err)
		return nil, errors.New("database error fetching appointments")
	}
	return appointments, nil
}

// FindBookedByDoctorAndDay returns active bookings intersecting [dayStart, dayEnd).
func (r *gormAppointmentRepository) FindBookedByDoctorAndDay(ctx context.Context, doctorID uint, dayStart, dayEnd time.Time) ([]domain.Appointment, error) {
	if doctorID == 0 {
		return nil, errors.New("invalid doctor ID")
	}

	var appointments []domain.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND status = ? AND starts_at < ? AND ends_at > ?",
			doctorID, domain.AppointmentBooked, dayEnd, dayStart).
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		log.Printf("[AppointmentRepository] Database error finding bookings for doctor %d: %v", doctorID, err)
		return nil, errors.New("database error fetching appointments")
	}
	return appointments, nil
}

func (r *gormAppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if id == 0 {
		return errors.New("invalid appointment ID")
	}

	result := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		log.Printf("[AppointmentRepository] Database error updating appointment ID %d: %v", id, result.Error)
		return errors.New("database error updating appointment")
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
