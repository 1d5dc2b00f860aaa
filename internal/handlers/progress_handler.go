package handlers

import (
	"net/http"

	"classpoints/internal/service"
)

// ProgressHandler serves the authenticated user's score history
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// Get returns the caller's history and summary. The view depends on role:
// students see their own records, parents their children's, teachers none.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	progress, err := h.progress.For(*user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load progress", err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}
