package services

import (
	"context"
	"strings"

	"partyboard/backend"
	"partyboard/session"
)

// AuthService handles the admin login flow. Token issuance and real
// verification are delegated to the backend; this layer only moves the
// credential in and out of the session slot and reads its advisory claims.
type AuthService interface {
	Login(ctx context.Context, username, password string) (session.Claims, error)
	Logout()
	Verify(ctx context.Context) error
	Claims() (session.Claims, bool)
}

type authService struct {
	api   backend.Client
	store *session.Store
}

func NewAuthService(api backend.Client, store *session.Store) AuthService {
	return &authService{api: api, store: store}
}

func (s *authService) Login(ctx context.Context, username, password string) (session.Claims, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return session.Claims{}, ErrCredentialsRequired
	}

	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return session.Claims{}, err
	}
	s.store.Set(token)

	// Decode failure is tolerated: the token still works against the
	// backend even if the UI cannot read a display name out of it.
	claims, _ := session.DecodeClaims(token)
	return claims, nil
}

func (s *authService) Logout() {
	s.store.Clear()
}

func (s *authService) Verify(ctx context.Context) error {
	return s.store.Verify(ctx, s.api)
}

func (s *authService) Claims() (session.Claims, bool) {
	token := s.store.Token()
	if token == "" {
		return session.Claims{}, false
	}
	claims, err := session.DecodeClaims(token)
	if err != nil {
		return session.Claims{}, false
	}
	return claims, true
}
