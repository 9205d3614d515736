package session

import (
	"context"
	"sync"

	"partyboard/backend"
)

// Store is the gateway's single credential slot, the analog of the
// browser's localStorage token entry. Login writes it, logout clears it,
// everything else only reads.
type Store struct {
	mu    sync.RWMutex
	token string
}

func NewStore() *Store {
	return &Store{}
}

// Set overwrites the held token.
func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the held token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear drops the token (logout).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Authenticated reports whether a token is present and not locally
// expired. This gates rendering only; Verify is the real check.
func (s *Store) Authenticated() bool {
	tok := s.Token()
	if tok == "" {
		return false
	}
	claims, err := DecodeClaims(tok)
	if err != nil {
		return false
	}
	return !claims.Expired()
}

// Verify asks the backend's verification endpoint whether the held token
// is still valid. A rejected token is cleared from the slot.
func (s *Store) Verify(ctx context.Context, api backend.Client) error {
	tok := s.Token()
	if tok == "" {
		return ErrNoToken
	}
	if err := api.VerifyToken(ctx, tok); err != nil {
		s.Clear()
		return err
	}
	return nil
}
