package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/service"
)

// MemberHandler serves the member directory: CRUD, search and merge.
type MemberHandler struct {
	members service.MemberService
}

func NewMemberHandler(members service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m domain.Member
	if !decodeBody(w, r, &m) {
		return
	}
	created, err := h.members.CreateMember(r.Context(), &m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type memberResponse struct {
	Member  *domain.Member            `json:"member"`
	History []domain.AttendanceRecord `json:"history"`
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, history, err := h.members.GetMember(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []domain.AttendanceRecord{}
	}
	writeJSON(w, http.StatusOK, memberResponse{Member: m, History: history})
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var m domain.Member
	if !decodeBody(w, r, &m) {
		return
	}
	m.ID = mux.Vars(r)["id"]
	if err := h.members.UpdateMember(r.Context(), &m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MemberHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := queryInt32(r, "limit", 50)
	members, err := h.members.SearchMembers(r.Context(), query, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []domain.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}

type mergeRequest struct {
	DuplicateID string `json:"duplicate_id"`
}

func (h *MemberHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	moved, err := h.members.MergeMembers(r.Context(), mux.Vars(r)["id"], req.DuplicateID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"attendance_moved": moved})
}
