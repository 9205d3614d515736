package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"partyboard/models"
)

// Client is the gateway's only doorway to the tournament backend. Every
// method mirrors one REST endpoint; nothing is cached or retried here.
// Authenticated calls take the bearer token explicitly, there is no
// ambient header injection.
type Client interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, token string, input models.CreateGameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, token, gameID string) error
	GetGame(ctx context.Context, gameID string) (*models.Game, error)
	GetGameByCode(ctx context.Context, code string) (*models.Game, error)
	GameLeaderboard(ctx context.Context, gameID string) (*models.LeaderboardSnapshot, error)

	Login(ctx context.Context, username, password string) (string, error)
	VerifyToken(ctx context.Context, token string) error

	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	CreateTournament(ctx context.Context, token string, input models.CreateTournamentInput) (*models.Tournament, error)
	UpdateTournamentStatus(ctx context.Context, token, tournamentID string, status models.TournamentStatus) (*models.Tournament, error)
	GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error)
	TournamentsLeaderboard(ctx context.Context) (*models.LeaderboardSnapshot, error)

	SubmitScores(ctx context.Context, token, tournamentID, gameID string, sub models.ScoreSubmission) error
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client with a fixed base URL and request timeout.
func New(baseURL string, timeout time.Duration) Client {
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do issues one request and decodes the response into dst (when non-nil).
// Error statuses are turned into *APIError with the server message pulled
// from the error envelope; transport failures map to ErrUnavailable.
func (c *client) do(ctx context.Context, method, path, token string, body, dst interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}

func (c *client) decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil {
		if env.Error != "" {
			apiErr.Message = env.Error
		} else {
			apiErr.Message = env.Message
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, apiErr)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrUnauthorized, apiErr)
	}
	return apiErr
}

// AsAPIError unwraps err to the *APIError inside it, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
