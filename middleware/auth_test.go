package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"partyboard/session"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      "admin-1",
		"username": "admin",
		"role":     "admin",
		"exp":      exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestRequireSessionBlocksWithoutToken(t *testing.T) {
	store := session.NewStore()
	called := false
	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
	require.Contains(t, rec.Body.String(), "session expired")
}

func TestRequireSessionBlocksExpiredToken(t *testing.T) {
	store := session.NewStore()
	store.Set(signedToken(t, time.Now().Add(-time.Hour)))

	called := false
	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestRequireSessionPassesValidToken(t *testing.T) {
	store := session.NewStore()
	store.Set(signedToken(t, time.Now().Add(time.Hour)))

	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
