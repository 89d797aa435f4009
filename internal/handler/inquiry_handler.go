package handler

import (
	"net/http"

	"github.com/TimKirathe/wonderland-api/internal/service"
)

type InquiryHandler struct {
	svc *service.IntakeService
}

func NewInquiryHandler(svc *service.IntakeService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

// Create handles POST /api/inquiries. The 400 body carries the failing
// field's form step so the multi-step form can jump the user back to it.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := readJSON(r, &fields); err != nil {
		writeError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	result, fieldErrs, err := h.svc.SubmitInquiry(r.Context(), fields)
	if len(fieldErrs) > 0 {
		first := fieldErrs[0]
		writeJSON(w, r, http.StatusBadRequest, map[string]any{
			"error": first.Message,
			"field": first.Field,
			"step":  first.Step,
		})
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":     true,
		"message":     result.Message,
		"referenceId": result.ReferenceID,
	})
}
