package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"partyboard/backend"
	"partyboard/models"
)

// dashboardFetchTimeout bounds the composite dashboard load. A hanging
// backend aborts the whole page fetch rather than spinning forever.
const dashboardFetchTimeout = 10 * time.Second

// DashboardView is everything the admin dashboard page renders: the
// summary cards plus the two tab lists.
type DashboardView struct {
	Stats       models.DashboardStats `json:"stats"`
	Games       []models.Game         `json:"games"`
	Tournaments []models.Tournament   `json:"tournaments"`
}

// DashboardService composes the admin dashboard from the backend lists
// and derives the display-only stats.
type DashboardService interface {
	Overview(ctx context.Context) (*DashboardView, error)
	CreateGame(ctx context.Context, token string, input models.CreateGameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, token, gameID string) error
}

type dashboardService struct {
	api         backend.Client
	tournaments TournamentService
}

func NewDashboardService(api backend.Client, tournaments TournamentService) DashboardService {
	return &dashboardService{api: api, tournaments: tournaments}
}

// Overview fetches games and tournaments concurrently under one deadline
// and computes the summary stats from whatever came back.
func (s *dashboardService) Overview(ctx context.Context) (*DashboardView, error) {
	ctx, cancel := context.WithTimeout(ctx, dashboardFetchTimeout)
	defer cancel()

	var (
		games       []models.Game
		tournaments []models.Tournament
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		games, err = s.api.ListGames(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tournaments, err = s.tournaments.Refresh(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardView{
		Stats:       ComputeStats(games, tournaments),
		Games:       games,
		Tournaments: tournaments,
	}, nil
}

func (s *dashboardService) CreateGame(ctx context.Context, token string, input models.CreateGameInput) (*models.Game, error) {
	return s.api.CreateGame(ctx, token, input)
}

func (s *dashboardService) DeleteGame(ctx context.Context, token, gameID string) error {
	return s.api.DeleteGame(ctx, token, gameID)
}

// ComputeStats derives the summary-card numbers from the fetched lists.
// It is a pure reduction over whatever is currently in memory and is
// recomputed on every page load; nothing here feeds authoritative
// ordering, which always comes pre-sorted from the server.
func ComputeStats(games []models.Game, tournaments []models.Tournament) models.DashboardStats {
	stats := models.DashboardStats{
		GamesTotal:       len(games),
		TournamentsTotal: len(tournaments),
	}
	for _, t := range tournaments {
		if t.Active() {
			stats.ActiveTournaments++
		}
		stats.TeamsTotal += len(t.Teams)
		for _, team := range t.Teams {
			stats.PlayersTotal += len(team.Players)
		}
	}
	stats.HighestTeamScore = HighestTeamScore(tournaments)
	stats.HighestIndividual = HighestIndividualScore(tournaments)
	return stats
}

// HighestTeamScore scans every tournament's teams for the maximum
// combined total. Zero when no team has scored.
func HighestTeamScore(tournaments []models.Tournament) int {
	max := 0
	for _, t := range tournaments {
		for _, team := range t.Teams {
			if team.CombinedTotal > max {
				max = team.CombinedTotal
			}
		}
	}
	return max
}

// HighestIndividualScore scans every team's nested player list for the
// maximum individual total.
func HighestIndividualScore(tournaments []models.Tournament) int {
	max := 0
	for _, t := range tournaments {
		for _, team := range t.Teams {
			for _, p := range team.Players {
				if p.TotalScore > max {
					max = p.TotalScore
				}
			}
		}
	}
	return max
}
