package api

import (
	"context"
	"net/http"

	"boipoka-storefront/internal/domain"
)

// LoginResult is the flattened login response: the user profile plus the
// bearer token at the top level.
type LoginResult struct {
	Token string `json:"token"`
	domain.User
}

// Register creates a new customer account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", payload, nil)
}

// Login exchanges credentials for a bearer token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", payload, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// Profile fetches the profile for the current bearer token.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
