package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"partyboard/services"
	"partyboard/session"
	"partyboard/wizard"
)

var errWizardNotFound = errors.New("no wizard with that id, start a new one")

// WizardHandler drives the multi-step tournament creation flow. Each
// started wizard lives in memory under a generated id; abandoning the
// browser tab simply strands the draft until the process restarts.
type WizardHandler struct {
	tournaments services.TournamentService
	store       *session.Store

	mu      sync.Mutex
	wizards map[string]*wizard.Wizard
}

func NewWizardHandler(tournaments services.TournamentService, store *session.Store) *WizardHandler {
	return &WizardHandler{
		tournaments: tournaments,
		store:       store,
		wizards:     make(map[string]*wizard.Wizard),
	}
}

func (h *WizardHandler) get(r *http.Request) (*wizard.Wizard, string, error) {
	id := chi.URLParam(r, "wizardID")
	if id == "" {
		return nil, "", errMissingParam("wizardID")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	wz, ok := h.wizards[id]
	if !ok {
		return nil, "", errWizardNotFound
	}
	return wz, id, nil
}

func (h *WizardHandler) stateResponse(id string, wz *wizard.Wizard) jsonResponse {
	resp := jsonResponse{
		"id":    id,
		"step":  wz.Step().String(),
		"draft": wz.Draft(),
	}
	if msg := wz.SubmitError(); msg != "" {
		resp["submit_error"] = msg
	}
	return resp
}

// Start handles POST /admin/wizards: opens a fresh wizard at the details
// step.
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	wz := wizard.New()

	h.mu.Lock()
	h.wizards[id] = wz
	h.mu.Unlock()

	if err := writeJSON(w, http.StatusCreated, h.stateResponse(id, wz), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// State handles GET /admin/wizards/{wizardID}.
func (h *WizardHandler) State(w http.ResponseWriter, r *http.Request) {
	wz, id, err := h.get(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, h.stateResponse(id, wz), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update handles PUT /admin/wizards/{wizardID}: writes whichever step
// sections the body carries into the unified draft. Editing clears any
// stale inline submit error.
func (h *WizardHandler) Update(w http.ResponseWriter, r *http.Request) {
	wz, id, err := h.get(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Name        *string            `json:"name"`
		Description *string            `json:"description"`
		Teams       []wizard.TeamDraft `json:"teams"`
		GameIDs     []string           `json:"gameIds"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.Name != nil || input.Description != nil {
		draft := wz.Draft()
		name, description := draft.Name, draft.Description
		if input.Name != nil {
			name = *input.Name
		}
		if input.Description != nil {
			description = *input.Description
		}
		wz.SetDetails(name, description)
	}
	if input.Teams != nil {
		wz.SetTeams(input.Teams)
	}
	if input.GameIDs != nil {
		wz.SetGames(input.GameIDs)
	}
	wz.ClearSubmitError()

	if err := writeJSON(w, http.StatusOK, h.stateResponse(id, wz), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Next handles POST /admin/wizards/{wizardID}/next: runs the current
// step's forward guard and advances on success.
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	wz, id, err := h.get(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := wz.Next(); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, h.stateResponse(id, wz), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Back handles POST /admin/wizards/{wizardID}/back. Never fails, never
// loses data.
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	wz, id, err := h.get(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	wz.Back()
	if err := writeJSON(w, http.StatusOK, h.stateResponse(id, wz), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Submit handles POST /admin/wizards/{wizardID}/submit from the review
// step. Failure keeps the wizard (and its draft) alive with the error
// recorded inline; success discards it.
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	wz, id, err := h.get(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if wz.Step() != wizard.StepReview {
		badRequestResponse(w, r, errors.New("wizard has not reached the review step"))
		return
	}

	tournament, err := h.tournaments.CreateFromWizard(r.Context(), h.store.Token(), wz)
	if err != nil {
		// Inline, not an alert: the review step renders submit_error.
		resp := h.stateResponse(id, wz)
		resp["error"] = wz.SubmitError()
		if writeErr := writeJSON(w, http.StatusBadGateway, resp, nil); writeErr != nil {
			serverErrorResponse(w, r, writeErr)
		}
		return
	}

	h.mu.Lock()
	delete(h.wizards, id)
	h.mu.Unlock()

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
