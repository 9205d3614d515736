package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partyboard/backend"
	"partyboard/services"
)

// GameHandler serves the per-game view and its leaderboard.
type GameHandler struct {
	api         backend.Client
	leaderboard services.LeaderboardService
}

func NewGameHandler(api backend.Client, leaderboard services.LeaderboardService) *GameHandler {
	return &GameHandler{api: api, leaderboard: leaderboard}
}

// Get handles GET /games/{gameID}.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		badRequestResponse(w, r, errMissingParam("gameID"))
		return
	}

	game, err := h.api.GetGame(r.Context(), gameID)
	if err != nil {
		if apiNotFound(err) {
			notFoundResponse(w, r)
			return
		}
		pageErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Leaderboard handles GET /games/{gameID}/leaderboard.
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		badRequestResponse(w, r, errMissingParam("gameID"))
		return
	}

	snapshot, err := h.leaderboard.ForGame(r.Context(), gameID)
	if err != nil {
		if apiNotFound(err) {
			notFoundResponse(w, r)
			return
		}
		pageErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
