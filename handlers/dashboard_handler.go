package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"partyboard/models"
	"partyboard/services"
	"partyboard/session"
)

// DashboardHandler serves the admin dashboard page: stat cards, the
// games/tournaments tabs, the create-game modal and the status toggle.
type DashboardHandler struct {
	dashboard   services.DashboardService
	tournaments services.TournamentService
	store       *session.Store
}

func NewDashboardHandler(dashboard services.DashboardService, tournaments services.TournamentService, store *session.Store) *DashboardHandler {
	return &DashboardHandler{
		dashboard:   dashboard,
		tournaments: tournaments,
		store:       store,
	}
}

// Overview handles GET /admin/dashboard. This is an initial page load, so
// a failure maps to the page-level error state with retry.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboard.Overview(r.Context())
	if err != nil {
		pageErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateGame handles POST /admin/games (the create-game modal form).
func (h *DashboardHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input models.CreateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" {
		badRequestResponse(w, r, errors.New("game name is required"))
		return
	}

	game, err := h.dashboard.CreateGame(r.Context(), h.store.Token(), input)
	if err != nil {
		// The modal stays open with the message; input is not lost.
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteGame handles DELETE /admin/games/{gameID}.
func (h *DashboardHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		badRequestResponse(w, r, errMissingParam("gameID"))
		return
	}

	if err := h.dashboard.DeleteGame(r.Context(), h.store.Token(), gameID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleStatus handles PUT /admin/tournaments/{tournamentID}/status. The
// response always carries the list the dashboard should now show: the
// reconciled one on success, the rolled-back one on failure.
func (h *DashboardHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "tournamentID")
	if tournamentID == "" {
		badRequestResponse(w, r, errMissingParam("tournamentID"))
		return
	}

	tournaments, err := h.tournaments.ToggleStatus(r.Context(), h.store.Token(), tournamentID)
	if err != nil {
		// Rollback already happened; the alert rides along with the
		// restored list.
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
