package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"eventdesk-backend/internal/csvimport"
	"eventdesk-backend/internal/service"
)

// ImportHandler serves the two-phase CSV import: preview parses and
// validates without persisting; commit applies a preview to an event.
type ImportHandler struct {
	imports service.ImportService
}

func NewImportHandler(imports service.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

type previewRequest struct {
	CSV string `json:"csv"`
}

type previewResponse struct {
	Rows    []csvimport.PreviewRow `json:"rows"`
	Metrics csvimport.Metrics      `json:"metrics"`
}

func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rows, err := h.imports.Preview(req.CSV)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{Rows: rows, Metrics: csvimport.Summarize(rows)})
}

type commitRequest struct {
	Rows []csvimport.PreviewRow `json:"rows"`
}

func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := h.imports.Commit(r.Context(), mux.Vars(r)["id"], req.Rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
