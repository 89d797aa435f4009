package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/render"

	"github.com/TimKirathe/wonderland-api/internal/store"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func readJSON(r *http.Request, v any) error {
	return render.DecodeJSON(r.Body, v)
}

// writeStoreError maps a store failure onto the documented status contract:
// conflict 409, unreachable 503, anything else 500. Full context is logged
// server-side; only a sanitized message reaches the client.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("store error on %s %s: %v", r.Method, r.URL.Path, err)
	switch store.KindOf(err) {
	case store.KindConflict:
		writeError(w, r, http.StatusConflict, "A submission with these details already exists.")
	case store.KindUnavailable:
		writeError(w, r, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again later.")
	default:
		writeError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
