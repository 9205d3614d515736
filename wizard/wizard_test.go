package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validTeams() []TeamDraft {
	return []TeamDraft{
		{Name: "Red Pandas", Players: []PlayerDraft{{Name: "Ann", Avatar: "panda"}}},
		{Name: "Blue Foxes", Players: []PlayerDraft{{Name: "Ben", Avatar: "fox"}, {Name: "Cat", Avatar: "owl"}}},
	}
}

func TestDetailsGuardRequiresName(t *testing.T) {
	w := New()
	require.ErrorIs(t, w.Next(), ErrNameRequired)
	w.SetDetails("   ", "")
	require.ErrorIs(t, w.Next(), ErrNameRequired)

	w.SetDetails("Office Party", "")
	require.NoError(t, w.Next())
	require.Equal(t, StepTeamsPlayers, w.Step())
}

func TestTeamsGuard(t *testing.T) {
	cases := []struct {
		name    string
		teams   []TeamDraft
		wantErr error
	}{
		{
			name:    "no teams",
			teams:   nil,
			wantErr: ErrNotEnoughTeams,
		},
		{
			name:    "only one team",
			teams:   validTeams()[:1],
			wantErr: ErrNotEnoughTeams,
		},
		{
			name: "unnamed team",
			teams: []TeamDraft{
				validTeams()[0],
				{Name: " ", Players: []PlayerDraft{{Name: "Ben", Avatar: "fox"}}},
			},
			wantErr: ErrTeamNameRequired,
		},
		{
			name: "team without players",
			teams: []TeamDraft{
				validTeams()[0],
				{Name: "Blue Foxes"},
			},
			wantErr: ErrTeamNeedsPlayers,
		},
		{
			name: "unnamed player",
			teams: []TeamDraft{
				validTeams()[0],
				{Name: "Blue Foxes", Players: []PlayerDraft{{Name: "", Avatar: "fox"}}},
			},
			wantErr: ErrPlayerNameRequired,
		},
		{
			name: "player without avatar",
			teams: []TeamDraft{
				validTeams()[0],
				{Name: "Blue Foxes", Players: []PlayerDraft{{Name: "Ben"}}},
			},
			wantErr: ErrPlayerAvatarRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := New()
			w.SetDetails("Office Party", "")
			require.NoError(t, w.Next())

			w.SetTeams(tc.teams)
			err := w.Next()
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, StepTeamsPlayers, w.Step(), "wizard must not advance")
		})
	}
}

func TestGameSelectionGuard(t *testing.T) {
	w := New()
	w.SetDetails("Office Party", "")
	require.NoError(t, w.Next())
	w.SetTeams(validTeams())
	require.NoError(t, w.Next())

	require.ErrorIs(t, w.Next(), ErrNoGamesSelected)

	w.SetGames([]string{"g1"})
	require.NoError(t, w.Next())
	require.Equal(t, StepReview, w.Step())
	require.ErrorIs(t, w.Next(), ErrAlreadyAtReview)
}

func TestBackPreservesEverything(t *testing.T) {
	w := New()
	w.SetDetails("Office Party", "annual bash")
	require.NoError(t, w.Next())
	w.SetTeams(validTeams())
	require.NoError(t, w.Next())
	w.SetGames([]string{"g1", "g2"})
	require.NoError(t, w.Next())

	w.Back()
	w.Back()
	w.Back()
	require.Equal(t, StepDetails, w.Step())
	w.Back() // already at the first step
	require.Equal(t, StepDetails, w.Step())

	draft := w.Draft()
	require.Equal(t, "Office Party", draft.Name)
	require.Equal(t, "annual bash", draft.Description)
	require.Equal(t, validTeams(), draft.Teams)
	require.Equal(t, []string{"g1", "g2"}, draft.GameIDs)
}

func TestPayloadAssemblesAndTrims(t *testing.T) {
	w := New()
	w.SetDetails("  Office Party ", " annual bash ")
	w.SetTeams([]TeamDraft{
		{Name: " Red Pandas ", Players: []PlayerDraft{{Name: " Ann ", Avatar: "panda"}}},
		{Name: "Blue Foxes", Players: []PlayerDraft{{Name: "Ben", Avatar: "fox"}}},
	})
	w.SetGames([]string{"g1"})

	payload := w.Payload()
	require.Equal(t, "Office Party", payload.Name)
	require.Equal(t, "annual bash", payload.Description)
	require.Len(t, payload.Teams, 2)
	require.Equal(t, "Red Pandas", payload.Teams[0].Name)
	require.Equal(t, "Ann", payload.Teams[0].Players[0].Name)
	require.Equal(t, "panda", payload.Teams[0].Players[0].Avatar)
	require.Equal(t, []string{"g1"}, payload.GameIDs)
}

func TestSubmitErrorKeepsDraft(t *testing.T) {
	w := New()
	w.SetDetails("Office Party", "")
	w.SetTeams(validTeams())
	w.SetGames([]string{"g1"})

	w.RecordSubmitError("name already taken")
	require.Equal(t, "name already taken", w.SubmitError())
	require.Equal(t, "Office Party", w.Draft().Name)

	w.ClearSubmitError()
	require.Empty(t, w.SubmitError())
}
