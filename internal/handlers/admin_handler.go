package handlers

import (
	"errors"
	"net/http"

	"classpoints/internal/models"
	"classpoints/internal/service"
)

// AdminHandler serves the teacher-only management surface: accounts,
// point settings, and full-state export
type AdminHandler struct {
	directory *service.DirectoryService
	settings  *service.SettingsService
	backup    *service.BackupService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(directory *service.DirectoryService, settings *service.SettingsService, backup *service.BackupService) *AdminHandler {
	return &AdminHandler{directory: directory, settings: settings, backup: backup}
}

// ListUsers returns every account, passwords stripped
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.List()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	out := make([]publicUser, 0, len(users))
	for i := range users {
		out = append(out, toPublicUser(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateUser stores a new account from the submitted fields
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req service.AccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.directory.Create(req)
	if err != nil {
		respondValidation(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPublicUser(user))
}

// UpdateUser replaces the account with the path id
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req service.AccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.directory.Update(id, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found", err)
			return
		}
		respondValidation(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPublicUser(user))
}

// DeleteUser removes the account with the path id. Teacher accounts cannot
// be deleted; the management surface must always stay reachable.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, err := h.directory.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found", err)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load user", err)
		return
	}
	if user.IsTeacher() {
		respondWithError(w, http.StatusForbidden, "Teacher accounts cannot be deleted", nil)
		return
	}

	if err := h.directory.Delete(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetSettings returns the current point configuration
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settings.Get()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// UpdateSettings replaces the point configuration. Stored sessions keep
// their saved snapshots; only future sheets pick up the new values.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var cfg models.PointConfig
	if err := decodeJSON(r, &cfg); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	saved, err := h.settings.Update(cfg)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Export streams the full-state snapshot as a JSON download
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="classpoints-export.json"`)

	if err := h.backup.WriteTo(w); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export data", err)
		return
	}
}
