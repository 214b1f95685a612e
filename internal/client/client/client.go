// Package client implements the REST API client for the RateMyStore
// backend. The Client interface is the seam every service depends on;
// tests substitute fakes for it.
package client

import (
	"context"

	"github.com/dmitrijs2005/ratemystore/internal/client/models"
)

// SignupRequest is the body of POST /auth/signup and POST /admin/users.
type SignupRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Address  string      `json:"address"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// TokenSource supplies the bearer token for authenticated calls. It is
// consulted on every request so the token is always read from durable
// storage, never cached in the transport.
type TokenSource func(ctx context.Context) (string, error)

// Client is the backend API surface consumed by the services layer.
//
// Contract:
//   - Login exchanges credentials for the user object plus an opaque token.
//   - Signup and CreateUser create accounts (public and admin flavors).
//   - The remaining calls are read-only, role-scoped collection fetches and
//     carry the bearer token.
//
// All methods honor context cancellation/timeouts.
type Client interface {
	Login(ctx context.Context, email, password string) (models.User, string, error)
	Signup(ctx context.Context, req SignupRequest) error
	UpdatePassword(ctx context.Context, oldPassword, newPassword string) (string, error)
	AdminDashboard(ctx context.Context) (models.DashboardSummary, error)
	ListUsers(ctx context.Context, filters map[string]string) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, req SignupRequest) error
	OwnerStoreRatings(ctx context.Context) ([]models.Store, error)
}
