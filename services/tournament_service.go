package services

import (
	"context"
	"log/slog"
	"sync"

	"partyboard/backend"
	"partyboard/models"
	"partyboard/state"
	"partyboard/wizard"
)

// TournamentService owns the dashboard's transient copy of the tournament
// list and the optimistic status toggle over it. The copy is replaced
// wholesale on every refresh; the server stays authoritative.
type TournamentService interface {
	Refresh(ctx context.Context) ([]models.Tournament, error)
	List() []models.Tournament
	Get(ctx context.Context, tournamentID string) (*models.Tournament, error)
	ToggleStatus(ctx context.Context, token, tournamentID string) ([]models.Tournament, error)
	CreateFromWizard(ctx context.Context, token string, w *wizard.Wizard) (*models.Tournament, error)
}

type tournamentService struct {
	api    backend.Client
	logger *slog.Logger

	mu          sync.Mutex
	tournaments []models.Tournament
}

func NewTournamentService(api backend.Client, logger *slog.Logger) TournamentService {
	return &tournamentService{api: api, logger: logger}
}

// Refresh fetches the list and replaces the in-memory copy.
func (s *tournamentService) Refresh(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.api.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.tournaments = tournaments
	s.mu.Unlock()
	return tournaments, nil
}

// List returns the current in-memory copy without touching the backend.
func (s *tournamentService) List() []models.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Tournament, len(s.tournaments))
	copy(out, s.tournaments)
	return out
}

func (s *tournamentService) Get(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	return s.api.GetTournament(ctx, tournamentID)
}

// ToggleStatus flips a tournament between active and inactive. The local
// list is rewritten first: the target gets the new status and, when that
// status is active, every other tournament is pre-emptively marked
// inactive (client convention, mirrored from server behavior). Success
// discards the optimistic copy for a fresh fetch; failure restores the
// pre-toggle list exactly. An id that is not in the list is a no-op.
func (s *tournamentService) ToggleStatus(ctx context.Context, token, tournamentID string) ([]models.Tournament, error) {
	s.mu.Lock()
	current := s.tournaments
	s.mu.Unlock()

	var newStatus models.TournamentStatus

	// Overlapping toggles are not coordinated: a second toggle racing the
	// first one's refetch resolves last-writer-wins.
	updated, err := state.Run(current, state.Mutation[[]models.Tournament]{
		Apply: func(current []models.Tournament) ([]models.Tournament, error) {
			idx := -1
			for i, t := range current {
				if t.ID == tournamentID {
					idx = i
					break
				}
			}
			if idx == -1 {
				return nil, state.ErrNoChange
			}

			if current[idx].Active() {
				newStatus = models.TournamentStatusInactive
			} else {
				newStatus = models.TournamentStatusActive
			}

			next := make([]models.Tournament, len(current))
			copy(next, current)
			next[idx].Status = newStatus
			if newStatus == models.TournamentStatusActive {
				for i := range next {
					if i != idx {
						next[i].Status = models.TournamentStatusInactive
					}
				}
			}
			return next, nil
		},
		Confirm: func() error {
			_, err := s.api.UpdateTournamentStatus(ctx, token, tournamentID, newStatus)
			return err
		},
		Refetch: func() ([]models.Tournament, error) {
			return s.api.ListTournaments(ctx)
		},
	})

	s.mu.Lock()
	s.tournaments = updated
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("tournament status toggle failed",
			slog.String("tournament_id", tournamentID),
			slog.Any("error", err))
		return updated, err
	}
	return updated, nil
}

// CreateFromWizard submits the wizard's assembled payload. A failure is
// recorded on the wizard for inline display and the draft is kept intact.
func (s *tournamentService) CreateFromWizard(ctx context.Context, token string, w *wizard.Wizard) (*models.Tournament, error) {
	created, err := s.api.CreateTournament(ctx, token, w.Payload())
	if err != nil {
		msg := "failed to create tournament"
		if apiErr, ok := backend.AsAPIError(err); ok {
			msg = apiErr.UserMessage()
		}
		w.RecordSubmitError(msg)
		return nil, err
	}
	w.ClearSubmitError()
	return created, nil
}
