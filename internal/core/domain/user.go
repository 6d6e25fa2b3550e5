package domain

import (
	"strings"
	"time"
)

// Role is the closed set of user roles. Values are stored lower-case and
// normalized exactly once, at the system boundary (NormalizeRole).
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
	RoleAdmin    Role = "admin"
)

// NormalizeRole maps raw input to a member of the closed role set.
// Blank input defaults to tenant; anything else is trimmed and lower-cased
// and must match a known role.
func NormalizeRole(raw string) (Role, error) {
	if strings.TrimSpace(raw) == "" {
		return RoleTenant, nil
	}
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleTenant, RoleLandlord, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

// User models a registered account. The password hash never leaves the
// server; the JSON projection exposes only public fields.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	RealName     string    `json:"realName,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
