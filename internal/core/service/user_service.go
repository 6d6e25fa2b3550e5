package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

// UserService implements admin-facing account management and the dashboard.
type UserService struct {
	users     ports.UserRepository
	listings  ports.ListingRepository
	inquiries ports.InquiryRepository
	log       zerolog.Logger
}

func NewUserService(users ports.UserRepository, listings ports.ListingRepository, inquiries ports.InquiryRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, listings: listings, inquiries: inquiries, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// SetActive enables or disables an account. Disabling does not revoke
// outstanding tokens; it only blocks new ones and future logins.
func (s *UserService) SetActive(ctx context.Context, id int64, active bool) (*domain.User, error) {
	user, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Bool("active", active).Msg("user active flag changed")
	return user, nil
}

// Dashboard aggregates the admin overview counters.
func (s *UserService) Dashboard(ctx context.Context) (*ports.Dashboard, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	listings, err := s.listings.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.listings.CountByStatus(ctx, domain.ListingPending)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	inquiriesToday, err := s.inquiries.CountSince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	return &ports.Dashboard{
		Users:           users,
		Listings:        listings,
		InquiriesToday:  inquiriesToday,
		PendingListings: pending,
	}, nil
}
