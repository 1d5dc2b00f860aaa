package handlers

import (
	"net/http"

	"classpoints/internal/models"
	"classpoints/internal/scoring"
	"classpoints/internal/service"
)

// LeaderboardHandler serves ranked score lists
type LeaderboardHandler struct {
	leaderboard *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

type leaderboardResponse struct {
	Timeframe scoring.Timeframe     `json:"timeframe"`
	ClassDay  models.ClassDay       `json:"classDay,omitempty"`
	Rankings  []models.RankingEntry `json:"rankings"`
}

// Get returns rankings for ?timeframe= (weekly, monthly, all; defaults to
// all) with an optional ?classDay= filter
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	timeframe := scoring.Timeframe(r.URL.Query().Get("timeframe"))
	if timeframe == "" {
		timeframe = scoring.TimeframeAll
	}
	if !timeframe.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Timeframe must be weekly, monthly, or all", nil)
		return
	}

	dayFilter := models.ClassDay(r.URL.Query().Get("classDay"))
	if dayFilter != "" && !dayFilter.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Class day must be Sunday or Tuesday", nil)
		return
	}

	rankings, err := h.leaderboard.Rankings(timeframe, dayFilter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to build leaderboard", err)
		return
	}
	if rankings == nil {
		rankings = []models.RankingEntry{}
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{
		Timeframe: timeframe,
		ClassDay:  dayFilter,
		Rankings:  rankings,
	})
}
