// File: internal/services/appointment/slots_test.go
package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibot-health/go-medibot/internal/domain"
)

func day(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestGenerateTimeSlotsFullDay(t *testing.T) {
	slots := GenerateTimeSlots(day(9, 0), day(17, 0), 30*time.Minute, nil)

	require.Len(t, slots, 16, "8 hours of 30-minute slots")
	assert.Equal(t, day(9, 0), slots[0].StartsAt)
	assert.Equal(t, day(16, 30), slots[len(slots)-1].StartsAt)
	assert.Equal(t, day(17, 0), slots[len(slots)-1].EndsAt)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateTimeSlotsMarksBookedUnavailable(t *testing.T) {
	booked := []domain.Appointment{
		{StartsAt: day(10, 0), EndsAt: day(10, 30), Status: domain.AppointmentBooked},
	}

	slots := GenerateTimeSlots(day(9, 0), day(17, 0), 30*time.Minute, booked)

	for _, s := range slots {
		if s.StartsAt.Equal(day(10, 0)) {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, "slot at %v", s.StartsAt)
		}
	}
}

func TestGenerateTimeSlotsIgnoresCancelledBookings(t *testing.T) {
	booked := []domain.Appointment{
		{StartsAt: day(10, 0), EndsAt: day(10, 30), Status: domain.AppointmentCancelled},
	}

	slots := GenerateTimeSlots(day(9, 0), day(17, 0), 30*time.Minute, booked)

	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateTimeSlotsOverlapSpansMultipleSlots(t *testing.T) {
	// A 45-minute booking blocks both slots it touches.
	booked := []domain.Appointment{
		{StartsAt: day(10, 0), EndsAt: day(10, 45), Status: domain.AppointmentBooked},
	}

	slots := GenerateTimeSlots(day(9, 0), day(17, 0), 30*time.Minute, booked)

	unavailable := 0
	for _, s := range slots {
		if !s.Available {
			unavailable++
		}
	}
	assert.Equal(t, 2, unavailable)
}

func TestGenerateTimeSlotsNoSpillPastDayEnd(t *testing.T) {
	// 45-minute increments into an 8-hour day leave a trailing remainder.
	slots := GenerateTimeSlots(day(9, 0), day(17, 0), 45*time.Minute, nil)

	require.NotEmpty(t, slots)
	last := slots[len(slots)-1]
	assert.False(t, last.EndsAt.After(day(17, 0)))
}

func TestGenerateTimeSlotsDegenerateInputs(t *testing.T) {
	assert.Nil(t, GenerateTimeSlots(day(17, 0), day(9, 0), 30*time.Minute, nil))
	assert.Nil(t, GenerateTimeSlots(day(9, 0), day(17, 0), 0, nil))
	assert.Nil(t, GenerateTimeSlots(day(9, 0), day(9, 0), 30*time.Minute, nil))
}
