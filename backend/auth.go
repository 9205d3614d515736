package backend

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// VerifyToken asks the backend whether the token is still good. This, not
// the locally decoded claims, is the source of truth for auth state.
func (c *client) VerifyToken(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/auth/verify", token, nil, nil)
}
