package services

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partyboard/backend/mockbackend"
	"partyboard/models"
)

func TestHighestScoresFromNestedLists(t *testing.T) {
	// Team scores 5, 12, 3 with one player at 20 buried in the second
	// tournament: the card numbers must be 12 and 20.
	tournaments := []models.Tournament{
		{
			ID: "t1",
			Teams: []models.Team{
				{ID: "a", CombinedTotal: 5, Players: []models.Player{{ID: "p1", TotalScore: 4}}},
				{ID: "b", CombinedTotal: 12, Players: []models.Player{{ID: "p2", TotalScore: 6}}},
			},
		},
		{
			ID: "t2",
			Teams: []models.Team{
				{ID: "c", CombinedTotal: 3, Players: []models.Player{{ID: "p3", TotalScore: 20}}},
			},
		},
	}

	require.Equal(t, 12, HighestTeamScore(tournaments))
	require.Equal(t, 20, HighestIndividualScore(tournaments))
}

func TestHighestScoresEmpty(t *testing.T) {
	require.Equal(t, 0, HighestTeamScore(nil))
	require.Equal(t, 0, HighestIndividualScore([]models.Tournament{{ID: "t1"}}))
}

func TestComputeStatsCounts(t *testing.T) {
	gofakeit.Seed(11)

	games := []models.Game{
		{ID: "g1", Name: gofakeit.Hobby()},
		{ID: "g2", Name: gofakeit.Hobby()},
		{ID: "g3", Name: gofakeit.Hobby()},
	}
	tournaments := []models.Tournament{
		{
			ID:     "t1",
			Name:   gofakeit.City(),
			Status: models.TournamentStatusActive,
			Teams: []models.Team{
				{ID: "a", Players: []models.Player{{ID: "p1"}, {ID: "p2"}}},
				{ID: "b", Players: []models.Player{{ID: "p3"}}},
			},
		},
		{ID: "t2", Name: gofakeit.City(), Status: models.TournamentStatusInactive},
	}

	stats := ComputeStats(games, tournaments)
	require.Equal(t, 3, stats.GamesTotal)
	require.Equal(t, 2, stats.TournamentsTotal)
	require.Equal(t, 1, stats.ActiveTournaments)
	require.Equal(t, 2, stats.TeamsTotal)
	require.Equal(t, 3, stats.PlayersTotal)
}

func TestOverviewComposesBothLists(t *testing.T) {
	api := new(mockbackend.Client)
	tournaments := NewTournamentService(api, testLogger())
	svc := NewDashboardService(api, tournaments)

	games := []models.Game{{ID: "g1", Name: "Charades"}}
	list := []models.Tournament{{ID: "t1", Status: models.TournamentStatusActive}}
	api.On("ListGames", mock.Anything).Return(games, nil).Once()
	api.On("ListTournaments", mock.Anything).Return(list, nil).Once()

	view, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, games, view.Games)
	require.Equal(t, list, view.Tournaments)
	require.Equal(t, 1, view.Stats.ActiveTournaments)

	// The tournament service's in-memory copy was refreshed by the same
	// composite fetch.
	require.Equal(t, list, tournaments.List())
}

func TestOverviewFailsWhenEitherFetchFails(t *testing.T) {
	api := new(mockbackend.Client)
	svc := NewDashboardService(api, NewTournamentService(api, testLogger()))

	api.On("ListGames", mock.Anything).Return(nil, errors.New("games down")).Once()
	api.On("ListTournaments", mock.Anything).Return([]models.Tournament{}, nil).Maybe()

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}
