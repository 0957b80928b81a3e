// File: internal/handlers/doctor_handler.go
package handlers

import (
	"net/http"

	doctorrepo "github.com/medibot-health/go-medibot/internal/repository/doctor"
)

// DoctorHandler exposes the public doctor directory.
type DoctorHandler struct {
	doctorRepo doctorrepo.DoctorRepository
}

func NewDoctorHandler(doctorRepo doctorrepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{doctorRepo: doctorRepo}
}

// ListDoctors handles GET /api/doctors?specialization=.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	if spec := r.URL.Query().Get("specialization"); spec != "" {
		doctors, err := h.doctorRepo.FindBySpecialization(r.Context(), spec, queryInt(r, "limit", 20))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list doctors")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"doctors": doctors})
		return
	}

	doctors, err := h.doctorRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list doctors")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"doctors": doctors})
}
