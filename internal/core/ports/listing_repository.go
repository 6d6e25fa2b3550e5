package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// ListingRepository persists rental listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id int64) (*domain.Listing, error)
	FindByFilter(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	FindByLandlord(ctx context.Context, landlordID int64) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus) (*domain.Listing, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64, delta int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ListingStatus) (int64, error)
}
