package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partyboard/backend"
	"partyboard/backend/mockbackend"
	"partyboard/models"
	"partyboard/realtime"
	"partyboard/services"
	"partyboard/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestNotFoundPage(t *testing.T) {
	router := chi.NewRouter()
	router.NotFound(NotFound)

	rec := doJSON(t, router, http.MethodGet, "/no/such/page", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "404", body["page"])
}

func TestLookupCodeSanitizesInput(t *testing.T) {
	api := new(mockbackend.Client)
	api.On("GetGameByCode", mock.Anything, "ABC123").
		Return(&models.Game{ID: "g1", Code: "ABC123"}, nil).Once()

	router := chi.NewRouter()
	router.Post("/code", NewHomeHandler(api).LookupCode)

	rec := doJSON(t, router, http.MethodPost, "/code", map[string]string{"code": "abc-123!"})
	require.Equal(t, http.StatusOK, rec.Code)
	api.AssertExpectations(t)
}

func TestLookupCodeEmptyIsUnprocessable(t *testing.T) {
	api := new(mockbackend.Client)

	router := chi.NewRouter()
	router.Post("/code", NewHomeHandler(api).LookupCode)

	rec := doJSON(t, router, http.MethodPost, "/code", map[string]string{"code": "??!"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	api.AssertNotCalled(t, "GetGameByCode", mock.Anything, mock.Anything)
}

func TestSubmitScoreValidationBlocksRequest(t *testing.T) {
	api := new(mockbackend.Client)
	h := NewConsoleHandler(
		services.NewScoringService(api, testLogger()),
		session.NewStore(),
		realtime.NewHub(testLogger()),
	)

	router := chi.NewRouter()
	router.Post("/console/{tournamentID}/scores", h.SubmitScore)

	rec := doJSON(t, router, http.MethodPost, "/console/t1/scores", services.ScoreInput{
		Mode:   models.ScoreTypeTeam,
		TeamID: "team1",
		Value:  "5",
		// GameID deliberately missing
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	api.AssertNotCalled(t, "SubmitScores",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitScoreSuccessClearsInput(t *testing.T) {
	api := new(mockbackend.Client)
	api.On("SubmitScores", mock.Anything, mock.Anything, "t1", "g1", mock.Anything).
		Return(nil).Once()
	api.On("GetTournament", mock.Anything, "t1").
		Return(&models.Tournament{ID: "t1"}, nil).Once()

	h := NewConsoleHandler(
		services.NewScoringService(api, testLogger()),
		session.NewStore(),
		realtime.NewHub(testLogger()),
	)

	router := chi.NewRouter()
	router.Post("/console/{tournamentID}/scores", h.SubmitScore)

	rec := doJSON(t, router, http.MethodPost, "/console/t1/scores", services.ScoreInput{
		GameID: "g1",
		Mode:   models.ScoreTypeTeam,
		TeamID: "team1",
		Value:  "8",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, true, body["cleared"])
	require.Equal(t, "award", body["kind"])
	api.AssertNumberOfCalls(t, "GetTournament", 1)
}

func TestToggleStatusFailureReturnsAlert(t *testing.T) {
	api := new(mockbackend.Client)
	api.On("ListTournaments", mock.Anything).
		Return([]models.Tournament{{ID: "t1", Status: models.TournamentStatusInactive}}, nil).Once()
	api.On("UpdateTournamentStatus", mock.Anything, mock.Anything, "t1", models.TournamentStatusActive).
		Return(nil, &backend.APIError{StatusCode: http.StatusConflict, Message: "another tournament is active"}).Once()

	tournaments := services.NewTournamentService(api, testLogger())
	_, err := tournaments.Refresh(context.Background())
	require.NoError(t, err)

	h := NewDashboardHandler(nil, tournaments, session.NewStore())
	router := chi.NewRouter()
	router.Put("/admin/tournaments/{tournamentID}/status", h.ToggleStatus)

	rec := doJSON(t, router, http.MethodPut, "/admin/tournaments/t1/status", nil)
	require.GreaterOrEqual(t, rec.Code, 400)
	body := decodeBody(t, rec)
	require.NotEmpty(t, body["error"])
}
