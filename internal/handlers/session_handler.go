package handlers

import (
	"errors"
	"net/http"

	"classpoints/internal/models"
	"classpoints/internal/service"
)

// SessionHandler serves the daily attendance sheets
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type sessionResponse struct {
	Session   *models.ClassSession `json:"session"`
	ClassDays []models.ClassDay    `json:"classDays"`
}

// Get returns the session for a date: stored when present, freshly
// materialized on class days. Non-class days are a normal empty response,
// not an error.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if _, err := models.ParseDate(date); err != nil {
		respondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD", nil)
		return
	}

	session, err := h.sessions.LoadForDate(date)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load session", err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Session:   session,
		ClassDays: []models.ClassDay{models.ClassDaySunday, models.ClassDayTuesday},
	})
}

type saveSessionRequest struct {
	Records []service.RecordEdit `json:"records"`
	// NumberActivityDescAll, when set, fills the activity description on
	// every record of the sheet in one go.
	NumberActivityDescAll *string `json:"numberActivityDescAll,omitempty"`
}

// Save applies submitted record edits to the date's session and persists the
// whole sheet. Scores are recomputed server-side from the session's own
// point snapshot.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if _, err := models.ParseDate(date); err != nil {
		respondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD", nil)
		return
	}

	var req saveSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, err := h.sessions.SaveForDate(date, req.Records, req.NumberActivityDescAll)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession):
			respondWithError(w, http.StatusBadRequest, "No class is scheduled on this date", err)
		case errors.Is(err, service.ErrNotOnSheet):
			respondWithError(w, http.StatusBadRequest, "Record for a student who is not on this sheet", err)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to save session", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Session:   session,
		ClassDays: []models.ClassDay{models.ClassDaySunday, models.ClassDayTuesday},
	})
}
