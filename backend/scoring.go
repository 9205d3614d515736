package backend

import (
	"context"
	"net/http"
	"net/url"

	"partyboard/models"
)

// SubmitScores posts a signed point delta for a team or player. The
// backend performs all aggregation (bonuses, ranks, floors); nothing about
// the outcome is inferred from the response here.
func (c *client) SubmitScores(ctx context.Context, token, tournamentID, gameID string, sub models.ScoreSubmission) error {
	path := "/leaderboardScoring/" + url.PathEscape(tournamentID) +
		"/games/" + url.PathEscape(gameID) + "/scores"
	return c.do(ctx, http.MethodPost, path, token, sub, nil)
}
