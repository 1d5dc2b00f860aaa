package handlers

import (
	"net/http"
)

// Counter exercises the backing store. The status endpoint only needs to know
// the database answers queries, not what is in it.
type Counter interface {
	Count() (int, error)
}

// StatusHandler serves the health check
type StatusHandler struct {
	store Counter
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(store Counter) *StatusHandler {
	return &StatusHandler{store: store}
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Get reports whether the database is reachable
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Count(); err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Database unreachable", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Success: true, Message: "ok"})
}
