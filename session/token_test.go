package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("whatever"))
	require.NoError(t, err)
	return s
}

func TestDecodeClaimsReadsPayloadWithoutVerification(t *testing.T) {
	// The signing key is unknown to the decoder on purpose: claims are
	// advisory and read unverified.
	token := makeToken(t, jwt.MapClaims{
		"sub":      "u1",
		"username": "gamemaster",
		"role":     "admin",
		"exp":      float64(time.Now().Add(time.Hour).Unix()),
	})

	claims, err := DecodeClaims(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.Subject)
	require.Equal(t, "gamemaster", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.False(t, claims.Expired())
}

func TestDecodeClaimsMalformedTreatedAsExpired(t *testing.T) {
	_, err := DecodeClaims("not-a-jwt-at-all")
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestExpiredClaims(t *testing.T) {
	token := makeToken(t, jwt.MapClaims{
		"exp": float64(time.Now().Add(-time.Minute).Unix()),
	})
	claims, err := DecodeClaims(token)
	require.NoError(t, err)
	require.True(t, claims.Expired())
}

func TestMissingExpIsExpired(t *testing.T) {
	token := makeToken(t, jwt.MapClaims{"username": "gamemaster"})
	claims, err := DecodeClaims(token)
	require.NoError(t, err)
	require.True(t, claims.Expired())
}

func TestStoreSlot(t *testing.T) {
	store := NewStore()
	require.Empty(t, store.Token())
	require.False(t, store.Authenticated())

	fresh := makeToken(t, jwt.MapClaims{
		"exp": float64(time.Now().Add(time.Hour).Unix()),
	})
	store.Set(fresh)
	require.Equal(t, fresh, store.Token())
	require.True(t, store.Authenticated())

	stale := makeToken(t, jwt.MapClaims{
		"exp": float64(time.Now().Add(-time.Hour).Unix()),
	})
	store.Set(stale)
	require.False(t, store.Authenticated())

	store.Clear()
	require.Empty(t, store.Token())
}
