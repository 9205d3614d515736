package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"partyboard/models"
)

func TestSubmitScoresSendsModeShapedPayload(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody models.ScoreSubmission

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	err := c.SubmitScores(context.Background(), "tok123", "t1", "g1", models.ScoreSubmission{
		ScoreType:  models.ScoreTypeTeam,
		TeamScores: []models.TeamScoreEntry{{TeamID: "team1", Score: -4, Reason: "penalty"}},
	})
	require.NoError(t, err)
	require.Equal(t, "/leaderboardScoring/t1/games/g1/scores", gotPath)
	require.Equal(t, "Bearer tok123", gotAuth)
	require.Equal(t, models.ScoreTypeTeam, gotBody.ScoreType)
	require.Len(t, gotBody.TeamScores, 1)
	require.Empty(t, gotBody.PlayerScores)
	require.Equal(t, -4, gotBody.TeamScores[0].Score)
}

func TestErrorEnvelopeMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "tournament name already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.CreateTournament(context.Background(), "tok", models.CreateTournamentInput{Name: "X"})
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "tournament name already exists", apiErr.UserMessage())
}

func TestErrorEnvelopeFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	err := c.DeleteGame(context.Background(), "tok", "g1")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, "the server could not process the request", apiErr.UserMessage())
}

func TestNotFoundAndUnauthorizedSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games/code/MISSING":
			w.WriteHeader(http.StatusNotFound)
		case "/auth/verify":
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	_, err := c.GetGameByCode(context.Background(), "MISSING")
	require.ErrorIs(t, err, ErrNotFound)

	err = c.VerifyToken(context.Background(), "stale")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := New(srv.URL, time.Second)
	_, err := c.ListGames(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoginReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "gamemaster", body["username"])
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-abc"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	token, err := c.Login(context.Background(), "gamemaster", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "tok-abc", token)
}
