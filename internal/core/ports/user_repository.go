package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// UserRepository is the credential store consumed by the auth core. Create
// must enforce username and email uniqueness atomically; a race between two
// concurrent registrations is resolved by the store's constraint, not by the
// service layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
