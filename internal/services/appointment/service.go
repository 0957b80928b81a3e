// File: internal/services/appointment/service.go
package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/medibot-health/go-medibot/internal/domain"
	apptrepo "github.com/medibot-health/go-medibot/internal/repository/appointment"
	doctorrepo "github.com/medibot-health/go-medibot/internal/repository/doctor"
)

var (
	ErrSlotTaken     = errors.New("the requested slot is already booked")
	ErrPastSlot      = errors.New("cannot book a slot in the past")
	ErrNotOwner      = errors.New("appointment belongs to another patient")
	ErrNotCancelable = errors.New("only booked appointments can be cancelled")
)

// Working day and slot size used when generating availability.
const (
	DayStartHour  = 9
	DayEndHour    = 17
	SlotIncrement = 30 * time.Minute
)

// Logger matches the shared key/value logging interface.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Service books, lists, and cancels appointments.
type Service struct {
	apptRepo   apptrepo.AppointmentRepository
	doctorRepo doctorrepo.DoctorRepository
	logger     Logger
}

func NewService(apptRepo apptrepo.AppointmentRepository, doctorRepo doctorrepo.DoctorRepository, logger Logger) *Service {
	return &Service{apptRepo: apptRepo, doctorRepo: doctorRepo, logger: logger}
}

// SlotsForDay generates the doctor's slot grid for the day containing date.
func (s *Service) SlotsForDay(ctx context.Context, doctorID uint, date time.Time) ([]TimeSlot, error) {
	if _, err := s.doctorRepo.FindByID(ctx, doctorID); err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), DayStartHour, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), DayEndHour, 0, 0, 0, date.Location())

	booked, err := s.apptRepo.FindBookedByDoctorAndDay(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return GenerateTimeSlots(dayStart, dayEnd, SlotIncrement, booked), nil
}

// Book creates an appointment after re-checking the slot against current
// bookings. The check and insert are not transactional; a duplicate booking
// racing through shows up as two rows and is resolved by the doctor.
func (s *Service) Book(ctx context.Context, patientID, doctorID uint, startsAt time.Time, reason string) (*domain.Appointment, error) {
	if startsAt.Before(time.Now()) {
		return nil, ErrPastSlot
	}
	if _, err := s.doctorRepo.FindByID(ctx, doctorID); err != nil {
		return nil, err
	}

	endsAt := startsAt.Add(SlotIncrement)
	booked, err := s.apptRepo.FindBookedByDoctorAndDay(ctx, doctorID, startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	for i := range booked {
		if booked[i].Overlaps(startsAt, endsAt) {
			return nil, ErrSlotTaken
		}
	}

	appt, err := s.apptRepo.Create(ctx, &domain.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Reason:    reason,
		Status:    domain.AppointmentBooked,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment booked",
		"appointment_id", appt.ID, "patient_id", patientID, "doctor_id", doctorID)
	return appt, nil
}

// ListForPatient returns the patient's appointments, newest first.
func (s *Service) ListForPatient(ctx context.Context, patientID uint) ([]domain.Appointment, error) {
	return s.apptRepo.FindByPatientID(ctx, patientID)
}

// Cancel flips a booked appointment to cancelled.
func (s *Service) Cancel(ctx context.Context, patientID, appointmentID uint) error {
	appt, err := s.apptRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.PatientID != patientID {
		return ErrNotOwner
	}
	if appt.Status != domain.AppointmentBooked {
		return ErrNotCancelable
	}
	return s.apptRepo.UpdateStatus(ctx, appointmentID, domain.AppointmentCancelled)
}
