package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/service"
)

// AttendanceHandler serves check-in desk operations: listing an event's
// attendees, status changes, walk-in registration, counts and export.
type AttendanceHandler struct {
	attendance service.AttendanceService
	export     service.ExportService
}

func NewAttendanceHandler(attendance service.AttendanceService, export service.ExportService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, export: export}
}

type updateStatusRequest struct {
	Status             string `json:"status"`
	EventInProgress    bool   `json:"event_in_progress"`
	HasManagerOverride bool   `json:"has_manager_override"`
	Reason             string `json:"reason"`
	ChangedBy          string `json:"changed_by"`
}

func (h *AttendanceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := h.attendance.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status,
		req.EventInProgress, req.HasManagerOverride, req.Reason, req.ChangedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type bulkUpdateRequest struct {
	AttendanceIDs      []string `json:"attendance_ids"`
	Status             string   `json:"status"`
	EventInProgress    bool     `json:"event_in_progress"`
	HasManagerOverride bool     `json:"has_manager_override"`
	Reason             string   `json:"reason"`
	ChangedBy          string   `json:"changed_by"`
}

func (h *AttendanceHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	updated, err := h.attendance.BulkUpdateStatus(r.Context(), mux.Vars(r)["id"], req.AttendanceIDs,
		req.Status, req.EventInProgress, req.HasManagerOverride, req.Reason, req.ChangedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

type walkInRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Company          string `json:"company"`
	ImmediateCheckIn bool   `json:"immediate_check_in"`
	ChangedBy        string `json:"changed_by"`
}

func (h *AttendanceHandler) CreateWalkIn(w http.ResponseWriter, r *http.Request) {
	var req walkInRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := h.attendance.CreateWalkIn(r.Context(), mux.Vars(r)["id"], req.Name, req.Email,
		req.Phone, req.Company, req.ImmediateCheckIn, req.ChangedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.attendance.ListAttendance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []domain.AttendeeRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

type removeRequest struct {
	Reason    string `json:"reason"`
	ChangedBy string `json:"changed_by"`
}

func (h *AttendanceHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.attendance.RemoveAttendance(r.Context(), mux.Vars(r)["id"], req.Reason, req.ChangedBy); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AttendanceHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.attendance.CountsByStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *AttendanceHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	out, err := h.export.ExportCSV(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

func (h *AttendanceHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	out, err := h.export.ExportJSON(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
