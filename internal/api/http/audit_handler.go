package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/service"
)

// AuditHandler exposes the status change log.
type AuditHandler struct {
	audits service.AuditService
}

func NewAuditHandler(audits service.AuditService) *AuditHandler {
	return &AuditHandler{audits: audits}
}

func (h *AuditHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	limit := queryInt32(r, "limit", 100)
	entries, err := h.audits.ListByEvent(r.Context(), mux.Vars(r)["id"], limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.StatusAudit{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *AuditHandler) ListByAttendance(w http.ResponseWriter, r *http.Request) {
	limit := queryInt32(r, "limit", 100)
	entries, err := h.audits.ListByAttendance(r.Context(), mux.Vars(r)["id"], limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.StatusAudit{}
	}
	writeJSON(w, http.StatusOK, entries)
}
