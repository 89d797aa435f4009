package handler

import (
	"net/http"

	"github.com/TimKirathe/wonderland-api/internal/repository"
	"github.com/TimKirathe/wonderland-api/internal/service"
)

// adminListLimit caps how many leads the console fetches per request.
const adminListLimit = 100

// AdminHandler is the read-only staff console: log in, list the captured
// leads. Status transitions stay in external tooling; nothing here mutates
// a record.
type AdminHandler struct {
	authSvc   *service.AuthService
	contacts  *repository.ContactRepo
	inquiries *repository.InquiryRepo
}

func NewAdminHandler(authSvc *service.AuthService, contacts *repository.ContactRepo, inquiries *repository.InquiryRepo) *AdminHandler {
	return &AdminHandler{authSvc: authSvc, contacts: contacts, inquiries: inquiries}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}
	if !h.authSvc.Enabled() {
		writeError(w, r, http.StatusServiceUnavailable, "staff console is not configured")
		return
	}
	token, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"token": token})
}

func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.contacts.FindRecent(r.Context(), adminListLimit)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"submissions": reqs,
		"total":       len(reqs),
	})
}

func (h *AdminHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	inqs, err := h.inquiries.FindRecent(r.Context(), adminListLimit)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"inquiries": inqs,
		"total":     len(inqs),
	})
}
