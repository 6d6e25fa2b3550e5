package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// UserInfo is the public projection of an account returned alongside tokens.
type UserInfo struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

// LoginResult is the token envelope returned by login and register.
type LoginResult struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int64    `json:"expiresIn"`
	User        UserInfo `json:"user"`
}

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Phone    string
	RealName string
}

// AuthService orchestrates credential verification and token issuance.
type AuthService interface {
	// Login authenticates by username or email. roleHint is accepted for
	// wire compatibility but does not affect which account is authenticated.
	Login(ctx context.Context, usernameOrEmail, password, roleHint string) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
	CurrentUser(ctx context.Context, userID int64) (*UserInfo, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
