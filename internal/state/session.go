package state

import (
	"context"
	"errors"

	"boipoka-storefront/internal/api"
	"boipoka-storefront/internal/domain"
	"boipoka-storefront/pkg/logger"
	"boipoka-storefront/pkg/utils"
)

// Status is the session loading state. Loading is only ever entered once,
// at startup when a cached token exists; every path out of it is terminal
// until the next full start.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// AuthResult is the outcome of a login or registration attempt. These
// calls never surface an error value; failures carry a human-readable
// message for inline display.
type AuthResult struct {
	Success bool
	Message string
}

// Session holds the authenticated identity and the role predicates views
// gate on. One instance exists per running client.
type Session struct {
	client *api.Client
	tokens *TokenCache
	user   *domain.User
	status Status
}

// NewSession constructs an uninitialized session over the given token
// cache. Call Restore once at startup to reach a terminal status.
func NewSession(client *api.Client, tokens *TokenCache) *Session {
	return &Session{
		client: client,
		tokens: tokens,
		status: StatusUninitialized,
	}
}

// Restore exchanges a cached token for a profile. Any failure — no token,
// expired token, network error, rejection — lands in Anonymous with the
// token cleared. This always reaches a terminal status.
func (s *Session) Restore(ctx context.Context) {
	token := s.tokens.Token()
	if token == "" {
		s.status = StatusAnonymous
		return
	}
	if utils.TokenExpired(token) {
		logger.Debug().Msg("Cached token already expired, skipping profile fetch")
		s.tokens.Clear()
		s.status = StatusAnonymous
		return
	}

	s.status = StatusLoading
	user, err := s.client.Profile(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Session restore failed, treating as logged out")
		s.tokens.Clear()
		s.user = nil
		s.status = StatusAnonymous
		return
	}
	s.user = &user
	s.status = StatusAuthenticated
}

// Login delegates to the API. On success the token is cached and the
// session user set from the response payload.
func (s *Session) Login(ctx context.Context, email, password string) AuthResult {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return AuthResult{Message: failureMessage(err, "Login failed")}
	}
	s.tokens.Set(result.Token)
	s.user = &result.User
	s.status = StatusAuthenticated
	return AuthResult{Success: true}
}

// Register creates an account. It does not log the new user in; the
// storefront sends them to the login page afterwards.
func (s *Session) Register(ctx context.Context, username, email, password string) AuthResult {
	if err := s.client.Register(ctx, username, email, password); err != nil {
		return AuthResult{Message: failureMessage(err, "Registration failed")}
	}
	return AuthResult{Success: true}
}

// Logout clears the cached token and session user. No network call.
func (s *Session) Logout() {
	s.tokens.Clear()
	s.user = nil
	s.status = StatusAnonymous
}

// Status returns the current session loading state.
func (s *Session) Status() Status {
	return s.status
}

// User returns the session user, or nil when anonymous.
func (s *Session) User() *domain.User {
	return s.user
}

// Role predicates. Derived from the current user on every call, never
// cached separately.

func (s *Session) IsAdmin() bool {
	return s.user.IsAdmin()
}

func (s *Session) IsModerator() bool {
	return s.user.IsModerator()
}

func (s *Session) IsPremium() bool {
	return s.user != nil && s.user.IsPremium
}

func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
