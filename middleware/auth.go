package middleware

import (
	"net/http"

	"partyboard/session"
)

// RequireSession gates the admin surface on the session slot holding a
// token that still looks valid. This is a rendering gate only: the
// backend re-checks the token on every proxied call, so a forged or stale
// pass here buys nothing beyond an error page one hop later.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.Authenticated() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error": "session expired, please sign in again"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
