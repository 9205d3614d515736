package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"partyboard/backend"
	"partyboard/models"
)

// ScoreInput is the operator's console selection, values as entered. The
// score arrives as text because that is what the input field holds; it is
// parsed and validated before anything leaves the process.
type ScoreInput struct {
	GameID   string           `json:"gameId"`
	Mode     models.ScoreType `json:"mode"`
	TeamID   string           `json:"teamId,omitempty"`
	PlayerID string           `json:"playerId,omitempty"`
	Value    string           `json:"value"`
	Reason   string           `json:"reason,omitempty"`
}

// ScoreResult reports a successful submission. Kind is wording only
// (award vs deduct by sign); the server did the actual arithmetic, and
// Tournament is the refetched record reflecting it.
type ScoreResult struct {
	Kind       string             `json:"kind"`
	Points     int                `json:"points"`
	Tournament *models.Tournament `json:"tournament"`
}

// ScoringService validates and submits point deltas from the scoring
// console. No score is ever patched locally: aggregation (team bonuses,
// per-game rank, performance rating) is server-computed, so the whole
// tournament record is refetched after every submission.
type ScoringService interface {
	Load(ctx context.Context, tournamentID string) (*models.Tournament, error)
	Submit(ctx context.Context, token, tournamentID string, input ScoreInput) (*ScoreResult, error)
}

type scoringService struct {
	api    backend.Client
	logger *slog.Logger
}

func NewScoringService(api backend.Client, logger *slog.Logger) ScoringService {
	return &scoringService{api: api, logger: logger}
}

func (s *scoringService) Load(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	return s.api.GetTournament(ctx, tournamentID)
}

// Submit validates the selection, posts the delta and refetches the
// tournament exactly once. Validation failures return before any request
// is issued; submission failures leave the previous score state untouched
// since nothing was applied optimistically.
func (s *scoringService) Submit(ctx context.Context, token, tournamentID string, input ScoreInput) (*ScoreResult, error) {
	points, err := validateScoreInput(input)
	if err != nil {
		return nil, err
	}

	sub := models.ScoreSubmission{ScoreType: input.Mode}
	switch input.Mode {
	case models.ScoreTypeTeam:
		sub.TeamScores = []models.TeamScoreEntry{{
			TeamID: input.TeamID,
			Score:  points,
			Reason: strings.TrimSpace(input.Reason),
		}}
	case models.ScoreTypePlayer:
		sub.PlayerScores = []models.PlayerScoreEntry{{
			PlayerID: input.PlayerID,
			TeamID:   input.TeamID,
			Score:    points,
		}}
	}

	if err := s.api.SubmitScores(ctx, token, tournamentID, input.GameID, sub); err != nil {
		s.logger.Warn("score submission rejected",
			slog.String("tournament_id", tournamentID),
			slog.String("game_id", input.GameID),
			slog.Any("error", err))
		return nil, err
	}

	kind := "award"
	if points < 0 {
		kind = "deduct"
	}

	tournament, err := s.api.GetTournament(ctx, tournamentID)
	if err != nil {
		// The submission landed; only the refresh failed. The console
		// keeps its stale view until the next socket-triggered refetch.
		s.logger.Warn("post-score refetch failed",
			slog.String("tournament_id", tournamentID),
			slog.Any("error", err))
		return &ScoreResult{Kind: kind, Points: points}, nil
	}

	return &ScoreResult{Kind: kind, Points: points, Tournament: tournament}, nil
}

// validateScoreInput enforces the console's required selections and
// parses the text value. A non-negative delta counts as award, negative
// as deduct; the classification is cosmetic.
func validateScoreInput(input ScoreInput) (int, error) {
	if strings.TrimSpace(input.GameID) == "" {
		return 0, ErrScoreGameRequired
	}

	switch input.Mode {
	case models.ScoreTypeTeam:
		if strings.TrimSpace(input.TeamID) == "" {
			return 0, ErrScoreTeamRequired
		}
	case models.ScoreTypePlayer:
		if strings.TrimSpace(input.PlayerID) == "" {
			return 0, ErrScorePlayerRequired
		}
	default:
		return 0, ErrScoreModeInvalid
	}

	value := strings.TrimSpace(input.Value)
	if value == "" {
		return 0, ErrScoreValueInvalid
	}
	points, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrScoreValueInvalid
	}
	return points, nil
}
