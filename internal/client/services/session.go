// Package services contains the application services of the RateMyStore
// client. This file defines the session service: the process-wide identity
// state machine that every protected screen consults.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/ratemystore/internal/client/client"
	"github.com/dmitrijs2005/ratemystore/internal/client/models"
	"github.com/dmitrijs2005/ratemystore/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ratemystore/internal/common"
	"github.com/dmitrijs2005/ratemystore/internal/logging"
)

// tokenKey is the well-known durable-storage key holding the opaque
// credential token. A session exists iff this key is present.
const tokenKey = "token"

// SessionService owns the Anonymous ⇄ Authenticated state machine.
//
// Contract:
//   - Login: exchange credentials, persist the token, enter Authenticated,
//     report the role-specific landing screen.
//   - Logout: clear memory and durable storage unconditionally, no network.
//   - Restore: repopulate the session from durable storage at startup
//     without contacting the login endpoint; token freshness is discovered
//     lazily when a protected call is rejected.
//   - CurrentUser / IsAuthenticated: synchronous in-memory reads.
//   - Subscribe: observer registration; every transition notifies all
//     subscribers so identity-dependent screens re-render.
type SessionService struct {
	api  client.Client
	meta metadata.Repository
	log  logging.Logger

	mu      sync.RWMutex
	session *models.Session
	subs    map[int]func()
	nextSub int
}

func NewSessionService(api client.Client, meta metadata.Repository, log logging.Logger) *SessionService {
	return &SessionService{
		api:  api,
		meta: meta,
		log:  log,
		subs: make(map[int]func()),
	}
}

// Login authenticates against the backend. On success the session is
// persisted and subscribers are notified; the returned landing tells the
// caller which home screen to navigate to. A rejected exchange (4xx) comes
// back as common.ErrInvalidCredentials carrying the API-supplied message
// (or a generic fallback); server-side failures pass through as request
// errors.
func (s *SessionService) Login(ctx context.Context, email, password string) (models.Landing, error) {
	user, token, err := s.api.Login(ctx, email, password)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			msg := apiErr.Message
			if msg == "" {
				msg = "Login failed"
			}
			return models.LandingLogin, fmt.Errorf("%w: %s", common.ErrInvalidCredentials, msg)
		}
		return models.LandingLogin, err
	}

	if err := s.meta.Set(ctx, tokenKey, []byte(token)); err != nil {
		return models.LandingLogin, fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.session = &models.Session{User: user, Token: token}
	s.mu.Unlock()
	s.notify()

	s.log.Info(ctx, "logged in", "email", user.Email, "role", user.Role)
	return user.Role.Landing(), nil
}

// Logout clears the in-memory and durable session. Memory is cleared and
// subscribers are notified even when the storage delete fails; the caller
// always lands on the login screen.
func (s *SessionService) Logout(ctx context.Context) (models.Landing, error) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	s.notify()

	if err := s.meta.Delete(ctx, tokenKey); err != nil {
		return models.LandingLogin, fmt.Errorf("failed to clear session: %w", err)
	}

	s.log.Info(ctx, "logged out")
	return models.LandingLogin, nil
}

// Restore repopulates the session from the stored token, if any. The token
// is not validated for freshness; identity is re-derived from its claims.
// A token whose claims cannot be read is discarded as if absent.
func (s *SessionService) Restore(ctx context.Context) error {
	value, err := s.meta.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return nil
	}

	token := string(value)
	user, err := userFromToken(token)
	if err != nil {
		s.log.Warn(ctx, "discarding unreadable stored token", "error", err.Error())
		return s.meta.Delete(ctx, tokenKey)
	}

	s.mu.Lock()
	s.session = &models.Session{User: user, Token: token}
	s.mu.Unlock()
	s.notify()

	s.log.Info(ctx, "session restored", "email", user.Email, "role", user.Role)
	return nil
}

// CurrentUser returns the logged-in user's copy, if any. Never suspends.
func (s *SessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.User{}, false
	}
	return s.session.User, true
}

// IsAuthenticated reports whether a session exists. Never suspends.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// Token reads the credential token from durable storage. It satisfies
// client.TokenSource: authenticated calls pick the token up at call time.
func (s *SessionService) Token(ctx context.Context) (string, error) {
	value, err := s.meta.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// TokenSource adapts a metadata repository into the transport's token
// callback so authenticated calls read the stored token at call time.
// It is what lets the API client be constructed before the session service.
func TokenSource(meta metadata.Repository) client.TokenSource {
	return func(ctx context.Context) (string, error) {
		value, err := meta.Get(ctx, tokenKey)
		if err != nil {
			return "", err
		}
		return string(value), nil
	}
}

// UpdatePassword changes the current user's password via the API and
// returns the server's confirmation message.
func (s *SessionService) UpdatePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	return s.api.UpdatePassword(ctx, oldPassword, newPassword)
}

// Subscribe registers fn to run after every session transition. The
// returned function removes the subscription.
func (s *SessionService) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *SessionService) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// userFromToken re-derives the user's identity from the unverified claims
// of the stored JWT. Verification is the server's job; the client only
// needs the display identity, and expiry still surfaces lazily as a
// rejected protected call.
func userFromToken(token string) (models.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	role, err := models.ParseRole(stringClaim(claims, "role"))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	return models.User{
		ID:      stringClaim(claims, "id"),
		Name:    stringClaim(claims, "name"),
		Email:   stringClaim(claims, "email"),
		Address: stringClaim(claims, "address"),
		Role:    role,
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
