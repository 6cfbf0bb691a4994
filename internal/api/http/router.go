package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Events     *EventHandler
	Attendance *AttendanceHandler
	Imports    *ImportHandler
	Members    *MemberHandler
	Audits     *AuditHandler
}

// NewRouter builds the API routing table.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/events", h.Events.Create).Methods(http.MethodPost)
	api.HandleFunc("/events", h.Events.List).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", h.Events.Get).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", h.Events.Update).Methods(http.MethodPut)
	api.HandleFunc("/events/{id}", h.Events.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/events/{id}/attendance", h.Attendance.List).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/attendance/counts", h.Attendance.Counts).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/attendance/export.csv", h.Attendance.ExportCSV).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/attendance/export.json", h.Attendance.ExportJSON).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/attendance/bulk-status", h.Attendance.BulkUpdateStatus).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/walk-ins", h.Attendance.CreateWalkIn).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/audit", h.Audits.ListByEvent).Methods(http.MethodGet)

	api.HandleFunc("/events/{id}/import/preview", h.Imports.Preview).Methods(http.MethodPost)
	api.HandleFunc("/events/{id}/import/commit", h.Imports.Commit).Methods(http.MethodPost)

	api.HandleFunc("/attendance/{id}/status", h.Attendance.UpdateStatus).Methods(http.MethodPatch)
	api.HandleFunc("/attendance/{id}", h.Attendance.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/attendance/{id}/audit", h.Audits.ListByAttendance).Methods(http.MethodGet)

	api.HandleFunc("/members", h.Members.Create).Methods(http.MethodPost)
	api.HandleFunc("/members", h.Members.Search).Methods(http.MethodGet)
	api.HandleFunc("/members/{id}", h.Members.Get).Methods(http.MethodGet)
	api.HandleFunc("/members/{id}", h.Members.Update).Methods(http.MethodPut)
	api.HandleFunc("/members/{id}/merge", h.Members.Merge).Methods(http.MethodPost)

	return r
}
