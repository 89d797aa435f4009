package handler

import (
	"log"
	"net/http"
	"runtime"
	"time"
)

// EnvFlags reports which integrations are configured, without leaking any
// of their values.
type EnvFlags struct {
	Database       bool `json:"database"`
	Email          bool `json:"email"`
	Analytics      bool `json:"analytics"`
	ErrorReporting bool `json:"errorReporting"`
}

// MonitoringHandler serves the operational snapshot and ingests the
// client-side error/performance beacons.
type MonitoringHandler struct {
	start time.Time
	env   EnvFlags
}

func NewMonitoringHandler(env EnvFlags) *MonitoringHandler {
	return &MonitoringHandler{start: time.Now(), env: env}
}

func (h *MonitoringHandler) Status(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":        "operational",
		"uptimeSeconds": int(time.Since(h.start).Seconds()),
		"env":           h.env,
		"memory": map[string]any{
			"allocBytes": mem.Alloc,
			"sysBytes":   mem.Sys,
			"numGC":      mem.NumGC,
		},
	})
}

// Error ingests a client-side error report. The payload is arbitrary JSON;
// it is logged and acknowledged, never rejected for content.
func (h *MonitoringHandler) Error(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, "client error report")
}

// Performance ingests a client-side performance beacon.
func (h *MonitoringHandler) Performance(w http.ResponseWriter, r *http.Request) {
	h.ingest(w, r, "client performance report")
}

func (h *MonitoringHandler) ingest(w http.ResponseWriter, r *http.Request, kind string) {
	var payload map[string]any
	if err := readJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	log.Printf("%s: %v", kind, payload)
	writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
