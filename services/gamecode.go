package services

import (
	"context"
	"strings"

	"partyboard/backend"
	"partyboard/models"
)

// SanitizeGameCode normalizes a code as typed on the home page: uppercase,
// alphanumerics only. "abc-123!" becomes "ABC123".
func SanitizeGameCode(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupGameByCode sanitizes the entered code and resolves it against the
// backend. An empty post-sanitize code never issues a request.
func LookupGameByCode(ctx context.Context, api backend.Client, raw string) (*models.Game, error) {
	code := SanitizeGameCode(raw)
	if code == "" {
		return nil, ErrGameCodeEmpty
	}
	return api.GetGameByCode(ctx, code)
}
