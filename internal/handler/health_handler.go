package handler

import (
	"net/http"
	"time"

	"github.com/TimKirathe/wonderland-api/internal/repository"
)

const (
	checkHealthy       = "healthy"
	checkUnhealthy     = "unhealthy"
	checkNotConfigured = "not configured"
)

// HealthHandler is the liveness/readiness probe. The API check is always
// healthy by construction; the database check does a one-row read when the
// store is configured.
type HealthHandler struct {
	reviews         *repository.ReviewRepo
	storeConfigured bool
	emailConfigured bool
}

func NewHealthHandler(reviews *repository.ReviewRepo, storeConfigured, emailConfigured bool) *HealthHandler {
	return &HealthHandler{reviews: reviews, storeConfigured: storeConfigured, emailConfigured: emailConfigured}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"api":      checkHealthy,
		"database": checkNotConfigured,
		"email":    checkNotConfigured,
	}

	if h.storeConfigured {
		if err := h.reviews.Probe(r.Context()); err != nil {
			checks["database"] = checkUnhealthy
		} else {
			checks["database"] = checkHealthy
		}
	}
	if h.emailConfigured {
		checks["email"] = checkHealthy
	}

	status := http.StatusOK
	overall := checkHealthy
	for _, c := range checks {
		if c == checkUnhealthy {
			status = http.StatusServiceUnavailable
			overall = checkUnhealthy
			break
		}
	}

	writeJSON(w, r, status, map[string]any{
		"status":    overall,
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
