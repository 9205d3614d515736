package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partyboard/backend/mockbackend"
	"partyboard/session"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestLoginRequiresCredentials(t *testing.T) {
	api := new(mockbackend.Client)
	store := session.NewStore()
	svc := NewAuthService(api, store)

	_, err := svc.Login(context.Background(), "", "hunter2")
	require.ErrorIs(t, err, ErrCredentialsRequired)
	_, err = svc.Login(context.Background(), "admin", "   ")
	require.ErrorIs(t, err, ErrCredentialsRequired)
	api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginStoresTokenAndReadsClaims(t *testing.T) {
	api := new(mockbackend.Client)
	store := session.NewStore()
	svc := NewAuthService(api, store)

	token := signedToken(t, jwt.MapClaims{
		"sub":      "u1",
		"username": "gamemaster",
		"role":     "admin",
		"exp":      float64(time.Now().Add(time.Hour).Unix()),
	})
	api.On("Login", mock.Anything, "gamemaster", "hunter2").Return(token, nil).Once()

	claims, err := svc.Login(context.Background(), "gamemaster", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "gamemaster", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, token, store.Token())
	require.True(t, store.Authenticated())

	svc.Logout()
	require.Empty(t, store.Token())
	require.False(t, store.Authenticated())
}
