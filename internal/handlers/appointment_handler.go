// File: internal/handlers/appointment_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/medibot-health/go-medibot/internal/middleware"
	"github.com/medibot-health/go-medibot/internal/services/appointment"
)

// AppointmentHandler exposes slot listing, booking, and cancellation.
// All routes require auth.
type AppointmentHandler struct {
	service *appointment.Service
}

func NewAppointmentHandler(service *appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Slots handles GET /api/doctors/{doctorId}/slots?date=2006-01-02.
func (h *AppointmentHandler) Slots(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathUint(w, r, "doctorId")
	if !ok {
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	slots, err := h.service.SlotsForDay(r.Context(), doctorID, date)
	if err != nil {
		writeError(w, http.StatusNotFound, "doctor not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"slots": slots})
}

type bookRequest struct {
	DoctorID uint   `json:"doctor_id"`
	StartsAt string `json:"starts_at"` // RFC 3339
	Reason   string `json:"reason"`
}

// Book handles POST /api/appointments.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	patientID := middleware.UserIDFrom(r.Context())

	var req bookRequest
	if !decodeBody(w, r, &req) {
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "starts_at must be RFC 3339")
		return
	}

	appt, err := h.service.Book(r.Context(), patientID, req.DoctorID, startsAt, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrSlotTaken):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, appointment.ErrPastSlot):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusNotFound, "doctor not found")
		}
		return
	}

	writeJSON(w, http.StatusCreated, appt)
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	patientID := middleware.UserIDFrom(r.Context())

	appts, err := h.service.ListForPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list appointments")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"appointments": appts})
}

// Cancel handles POST /api/appointments/{appointmentId}/cancel.
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	patientID := middleware.UserIDFrom(r.Context())
	appointmentID, ok := pathUint(w, r, "appointmentId")
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), patientID, appointmentID); err != nil {
		switch {
		case errors.Is(err, appointment.ErrNotOwner):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, appointment.ErrNotCancelable):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusNotFound, "appointment not found")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func pathUint(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := mux.Vars(r)[name]
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
