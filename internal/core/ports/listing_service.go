package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// ListingInput carries the landlord-editable listing fields.
type ListingInput struct {
	Title       string
	City        string
	Region      string
	Bedrooms    int
	Bathrooms   float64
	AreaSqm     float64
	Price       float64
	TotalFloors int
	Orientation string
	Decoration  string
	Description string
}

// ListingService implements listing publication, discovery, and review.
type ListingService interface {
	Browse(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	Get(ctx context.Context, id int64) (*domain.Listing, error)
	Mine(ctx context.Context, landlordID int64) ([]domain.Listing, error)
	Create(ctx context.Context, landlordID int64, in ListingInput) (*domain.Listing, error)
	Update(ctx context.Context, landlordID, id int64, in ListingInput) (*domain.Listing, error)
	UpdateStatus(ctx context.Context, landlordID, id int64, status string) (*domain.Listing, error)
	Delete(ctx context.Context, landlordID, id int64) error
	PendingReview(ctx context.Context) ([]domain.Listing, error)
	Review(ctx context.Context, id int64, approved bool) (*domain.Listing, error)
	Trending(ctx context.Context, n int64) ([]domain.Listing, error)
}
