// Package models defines client-side data models used by the RateMyStore CLI.
package models

import "fmt"

// Role is the closed set of account roles known to the backend.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
	RoleUser  Role = "USER"
)

// ParseRole maps a raw role string from the API to a Role.
// Unknown values are rejected rather than passed through.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleOwner, RoleUser:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Landing is the screen a role is routed to after login.
type Landing string

const (
	LandingAdmin Landing = "admin"
	LandingOwner Landing = "owner"
	LandingUser  Landing = "user"
	LandingLogin Landing = "login"
)

// Landing returns the role-specific home screen.
func (r Role) Landing() Landing {
	switch r {
	case RoleAdmin:
		return LandingAdmin
	case RoleOwner:
		return LandingOwner
	case RoleUser:
		return LandingUser
	default:
		return LandingLogin
	}
}

// User is a read-only snapshot of an account as served by the API.
// Rating is only populated for OWNER accounts.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Role    Role     `json:"role"`
	Rating  *float64 `json:"rating,omitempty"`
}

// Session is the authenticated identity plus the opaque credential token.
type Session struct {
	User  User
	Token string
}
