// File: internal/repository/doctor/doctor_repository.go
package doctor

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/medibot-health/go-medibot/internal/domain"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type gormDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &gormDoctorRepository{db: db}
}

func (r *gormDoctorRepository) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Specialization) == "" {
		return nil, errors.New("doctor requires a name and specialization")
	}

	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		log.Printf("[DoctorRepository] Database error creating doctor %q: %v", d.Name, err)
		return nil, errors.New("database error creating doctor")
	}
	return d, nil
}

func (r *gormDoctorRepository) FindByID(ctx context.Context, id uint) (*domain.Doctor, error) {
	if id == 0 {
		return nil, errors.New("invalid doctor ID")
	}

	var d domain.Doctor
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		log.Printf("[DoctorRepository] Database error finding doctor ID %d: %v", id, err)
		return nil, errors.New("database error finding doctor")
	}
	return &d, nil
}

func (r *gormDoctorRepository) FindAll(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("rating DESC, id ASC").
		Find(&doctors).Error
	if err != nil {
		log.Printf("[DoctorRepository] Database error listing doctors: %v", err)
		return nil, errors.New("database error fetching doctors")
	}
	return doctors, nil
}

func (r *gormDoctorRepository) FindBySpecialization(ctx context.Context, specialization string, limit int) ([]domain.Doctor, error) {
	if strings.TrimSpace(specialization) == "" {
		return nil, errors.New("specialization is required")
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var doctors []domain.Doctor
	err := r.db.WithContext(ctx).
		Where("specialization = ? AND is_available = ?", specialization, true).
		Order("rating DESC, experience DESC").
		Limit(limit).
		Find(&doctors).Error
	if err != nil {
		log.Printf("[DoctorRepository] Database error finding doctors for %q: %v", specialization, err)
		return nil, errors.New("database error fetching doctors")
	}
	return doctors, nil
}
