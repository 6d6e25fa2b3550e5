package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// Dashboard aggregates the counters shown on the admin overview.
type Dashboard struct {
	Users           int64 `json:"users"`
	Listings        int64 `json:"listings"`
	InquiriesToday  int64 `json:"inquiriesToday"`
	PendingListings int64 `json:"pendingListings"`
}

// UserService implements admin-facing account management.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.User, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}
