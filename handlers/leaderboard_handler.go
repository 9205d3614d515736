package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partyboard/realtime"
	"partyboard/services"
)

// LeaderboardHandler serves the tournament leaderboard page and the
// public scoreboard. Both render the same snapshot; the scoreboard adds
// per-team expand/collapse display state.
type LeaderboardHandler struct {
	leaderboard services.LeaderboardService
	display     *services.DisplayState
	listener    *realtime.Listener
}

func NewLeaderboardHandler(leaderboard services.LeaderboardService, listener *realtime.Listener) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: leaderboard,
		display:     services.NewDisplayState(),
		listener:    listener,
	}
}

// Leaderboard handles GET /leaderboard. The first load fetches; later
// loads serve the cached snapshot and refresh silently in the background
// so stale data stays visible instead of flashing a spinner.
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if !h.leaderboard.Loaded() {
		snapshot, err := h.leaderboard.Refresh(r.Context())
		if err != nil {
			pageErrorResponse(w, r, err)
			return
		}
		h.respond(w, r, jsonResponse{"leaderboard": snapshot, "loading": false})
		return
	}

	h.respond(w, r, jsonResponse{"leaderboard": h.leaderboard.Current(), "loading": false})
}

// Scoreboard handles GET /scoreboard: the snapshot plus which team cards
// are expanded and the connection badge for the header.
func (h *LeaderboardHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	if !h.leaderboard.Loaded() {
		if _, err := h.leaderboard.Refresh(r.Context()); err != nil {
			pageErrorResponse(w, r, err)
			return
		}
	}

	snapshot := h.leaderboard.Current()
	expanded := make(map[string]bool)
	if snapshot != nil {
		for _, team := range snapshot.TeamRankings {
			if h.display.Expanded(team.TeamID) {
				expanded[team.TeamID] = true
			}
		}
	}

	h.respond(w, r, jsonResponse{
		"leaderboard": snapshot,
		"expanded":    expanded,
		"connection":  h.listener.State(),
	})
}

// ToggleTeam handles POST /scoreboard/teams/{teamID}/toggle.
func (h *LeaderboardHandler) ToggleTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		badRequestResponse(w, r, errMissingParam("teamID"))
		return
	}

	expanded := h.display.Toggle(teamID)
	h.respond(w, r, jsonResponse{"teamId": teamID, "expanded": expanded})
}

// Connection handles GET /connection: the header badge state.
func (h *LeaderboardHandler) Connection(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, jsonResponse{
		"state": h.listener.State(),
		"room":  h.listener.Room(),
	})
}

func (h *LeaderboardHandler) respond(w http.ResponseWriter, r *http.Request, data jsonResponse) {
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
