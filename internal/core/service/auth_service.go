package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
	"github.com/rentalhub/rental-api/internal/core/token"
)

// AuthService implements login, registration, and identity lookup on top of
// the user repository, bcrypt, and the token codec.
type AuthService struct {
	users ports.UserRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, log: log}
}

// Login authenticates by username first, falling back to email. Unknown
// accounts, deactivated accounts, and password mismatches all surface the
// same ErrInvalidCredentials so callers cannot enumerate accounts. roleHint
// is accepted for wire compatibility and ignored.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password, roleHint string) (*ports.LoginResult, error) {
	_ = roleHint

	if usernameOrEmail == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, usernameOrEmail)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.FindByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		s.log.Warn().Int64("user_id", user.ID).Msg("login rejected for deactivated account")
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.issueFor(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return result, nil
}

// Register creates an account and immediately issues a token for it.
// Email and username collisions are reported separately; the final Create
// still relies on the store's unique indexes to settle races.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.LoginResult, error) {
	if exists, err := s.users.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrDuplicateEmail
	}

	if exists, err := s.users.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.ErrDuplicateUsername
	}

	role, err := domain.NormalizeRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        in.Phone,
		RealName:     in.RealName,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	result, err := s.issueFor(created)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return result, nil
}

// CurrentUser returns the public projection for the authenticated user.
// A zero userID means no identity was attached upstream.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*ports.UserInfo, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := projection(user)
	return &info, nil
}

func (s *AuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, email)
}

func (s *AuthService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.users.ExistsByUsername(ctx, username)
}

func (s *AuthService) issueFor(user *domain.User) (*ports.LoginResult, error) {
	tok, err := s.codec.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.codec.TTL().Seconds()),
		User:        projection(user),
	}, nil
}

func projection(user *domain.User) ports.UserInfo {
	return ports.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
