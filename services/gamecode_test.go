package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partyboard/backend/mockbackend"
	"partyboard/models"
)

func TestSanitizeGameCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"abc-123!", "ABC123"},
		{"ABC123", "ABC123"},
		{"  ab c1 23 ", "ABC123"},
		{"!!!", ""},
		{"", ""},
		{"party🎉night", "PARTYNIGHT"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeGameCode(tc.in), "input %q", tc.in)
	}
}

func TestLookupGameByCodeSanitizesBeforeRequest(t *testing.T) {
	api := new(mockbackend.Client)
	game := &models.Game{ID: "g1", Code: "ABC123"}
	api.On("GetGameByCode", mock.Anything, "ABC123").Return(game, nil).Once()

	got, err := LookupGameByCode(context.Background(), api, "abc-123!")
	require.NoError(t, err)
	require.Equal(t, game, got)
	api.AssertExpectations(t)
}

func TestLookupGameByCodeEmptyNeverRequests(t *testing.T) {
	api := new(mockbackend.Client)

	_, err := LookupGameByCode(context.Background(), api, "--!!--")
	require.ErrorIs(t, err, ErrGameCodeEmpty)
	api.AssertNotCalled(t, "GetGameByCode", mock.Anything, mock.Anything)
}
