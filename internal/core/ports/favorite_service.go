package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// FavoriteService implements saving and unsaving listings.
type FavoriteService interface {
	// Add is idempotent: favoriting an already-saved listing returns the
	// existing record.
	Add(ctx context.Context, userID, listingID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, listingID int64) error
	List(ctx context.Context, userID int64) ([]domain.Favorite, error)
	IsFavorited(ctx context.Context, userID, listingID int64) (bool, error)
}
