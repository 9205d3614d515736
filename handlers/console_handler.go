package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partyboard/realtime"
	"partyboard/services"
	"partyboard/session"
)

// ConsoleHandler is the game master's live scoring console for one
// tournament.
type ConsoleHandler struct {
	scoring services.ScoringService
	store   *session.Store
	hub     *realtime.Hub
}

func NewConsoleHandler(scoring services.ScoringService, store *session.Store, hub *realtime.Hub) *ConsoleHandler {
	return &ConsoleHandler{scoring: scoring, store: store, hub: hub}
}

// State handles GET /console/{tournamentID}: the full tournament record
// the console renders its game/team/player pickers from.
func (h *ConsoleHandler) State(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "tournamentID")
	if tournamentID == "" {
		badRequestResponse(w, r, errMissingParam("tournamentID"))
		return
	}

	tournament, err := h.scoring.Load(r.Context(), tournamentID)
	if err != nil {
		pageErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitScore handles POST /console/{tournamentID}/scores. Success clears
// the console input (cleared flag), returns the single refetched
// tournament record and nudges scoreboard viewers of this room.
func (h *ConsoleHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "tournamentID")
	if tournamentID == "" {
		badRequestResponse(w, r, errMissingParam("tournamentID"))
		return
	}

	var input services.ScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.scoring.Submit(r.Context(), h.store.Token(), tournamentID, input)
	if err != nil {
		// Alert with the server message or a generic fallback; nothing was
		// applied locally so there is nothing to roll back.
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.hub.SignalRoom(tournamentID, "scoreUpdated")

	response := jsonResponse{
		"kind":       result.Kind,
		"points":     result.Points,
		"tournament": result.Tournament,
		"cleared":    true,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
