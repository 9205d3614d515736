package handlers

import "net/http"

// NotFound renders the 404 page for any route outside the client surface.
func NotFound(w http.ResponseWriter, r *http.Request) {
	env := jsonResponse{
		"error": "page not found",
		"page":  "404",
	}
	_ = writeJSON(w, http.StatusNotFound, env, nil)
}
