package handlers

import (
	"net/http"

	"partyboard/backend"
	"partyboard/services"
)

// HomeHandler serves the public entry page: a game-code box and nothing
// else.
type HomeHandler struct {
	api backend.Client
}

func NewHomeHandler(api backend.Client) *HomeHandler {
	return &HomeHandler{api: api}
}

// Index handles GET /: the code-entry page shell.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{
		"page":   "home",
		"prompt": "enter a game code to find your scoreboard",
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LookupCode handles POST /code: sanitizes the entered code and resolves
// it to a game. Lowercase and punctuation are forgiven before the lookup
// request goes out.
func (h *HomeHandler) LookupCode(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Code string `json:"code"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := services.LookupGameByCode(r.Context(), h.api, input.Code)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
