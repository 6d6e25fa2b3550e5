package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// FavoriteRepository persists saved listings per user.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) (*domain.Favorite, error)
	Delete(ctx context.Context, userID, listingID int64) error
	Exists(ctx context.Context, userID, listingID int64) (bool, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
}
