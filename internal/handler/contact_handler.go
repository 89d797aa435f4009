package handler

import (
	"net/http"

	"github.com/TimKirathe/wonderland-api/internal/service"
)

type ContactHandler struct {
	svc *service.IntakeService
}

func NewContactHandler(svc *service.IntakeService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Create handles POST /api/contact. Rate limiting runs before this in the
// middleware chain; by the time we are here the request is within budget.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := readJSON(r, &fields); err != nil {
		writeError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	result, fieldErrs, err := h.svc.SubmitContact(r.Context(), fields)
	if len(fieldErrs) > 0 {
		first := fieldErrs[0]
		writeJSON(w, r, http.StatusBadRequest, map[string]string{
			"error": first.Message,
			"field": first.Field,
		})
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"message":   result.Message,
		"requestId": result.ReferenceID,
	})
}
