// File: internal/services/appointment/slots.go
package appointment

import (
	"time"

	"github.com/medibot-health/go-medibot/internal/domain"
)

// TimeSlot is one bookable increment in a doctor's day.
type TimeSlot struct {
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Available bool      `json:"available"`
}

// GenerateTimeSlots walks [dayStart, dayEnd) in fixed increments and marks a
// slot unavailable when it overlaps any existing booking. Slots that would
// spill past dayEnd are not emitted.
func GenerateTimeSlots(dayStart, dayEnd time.Time, increment time.Duration, booked []domain.Appointment) []TimeSlot {
	if increment <= 0 || !dayStart.Before(dayEnd) {
		return nil
	}

	var slots []TimeSlot
	for start := dayStart; !start.Add(increment).After(dayEnd); start = start.Add(increment) {
		end := start.Add(increment)
		slot := TimeSlot{StartsAt: start, EndsAt: end, Available: true}
		for i := range booked {
			if booked[i].Status == domain.AppointmentBooked && booked[i].Overlaps(start, end) {
				slot.Available = false
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
