package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

const defaultBrowseLimit = 50

// ViewRecorder accepts listing view events for asynchronous counting. The
// call must not block the request path.
type ViewRecorder interface {
	Record(listingID int64)
}

// TrendingSource ranks listings by recent view activity.
type TrendingSource interface {
	TopListingIDs(ctx context.Context, n int64) ([]int64, error)
}

// ListingService implements listing publication, discovery, and admin review.
type ListingService struct {
	repo     ports.ListingRepository
	views    ViewRecorder
	trending TrendingSource
	log      zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, views ViewRecorder, trending TrendingSource, log zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, views: views, trending: trending, log: log}
}

// Browse returns listings matching the filter. Anonymous browsing defaults
// to available listings only.
func (s *ListingService) Browse(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if filter.Status == "" {
		filter.Status = domain.ListingAvailable
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultBrowseLimit
	}
	return s.repo.FindByFilter(ctx, filter)
}

// Get returns one listing and records the view asynchronously.
func (s *ListingService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.views.Record(id)
	return listing, nil
}

func (s *ListingService) Mine(ctx context.Context, landlordID int64) ([]domain.Listing, error) {
	return s.repo.FindByLandlord(ctx, landlordID)
}

// Create publishes a new listing in pending state awaiting admin review.
func (s *ListingService) Create(ctx context.Context, landlordID int64, in ports.ListingInput) (*domain.Listing, error) {
	now := time.Now().UTC()
	listing := &domain.Listing{
		LandlordID:  landlordID,
		Title:       in.Title,
		City:        in.City,
		Region:      in.Region,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		AreaSqm:     in.AreaSqm,
		Price:       in.Price,
		TotalFloors: in.TotalFloors,
		Orientation: in.Orientation,
		Decoration:  in.Decoration,
		Description: in.Description,
		Status:      domain.ListingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("listing_id", created.ID).Int64("landlord_id", landlordID).Str("city", created.City).Msg("listing created")
	return created, nil
}

// Update replaces the editable fields of a listing owned by landlordID.
func (s *ListingService) Update(ctx context.Context, landlordID, id int64, in ports.ListingInput) (*domain.Listing, error) {
	listing, err := s.owned(ctx, landlordID, id)
	if err != nil {
		return nil, err
	}

	listing.Title = in.Title
	listing.City = in.City
	listing.Region = in.Region
	listing.Bedrooms = in.Bedrooms
	listing.Bathrooms = in.Bathrooms
	listing.AreaSqm = in.AreaSqm
	listing.Price = in.Price
	listing.TotalFloors = in.TotalFloors
	listing.Orientation = in.Orientation
	listing.Decoration = in.Decoration
	listing.Description = in.Description
	listing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, listing)
}

// UpdateStatus moves a listing owned by landlordID to a new lifecycle state.
func (s *ListingService) UpdateStatus(ctx context.Context, landlordID, id int64, status string) (*domain.Listing, error) {
	parsed, err := domain.ParseListingStatus(status)
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, landlordID, id); err != nil {
		return nil, err
	}

	s.log.Info().Int64("listing_id", id).Str("status", string(parsed)).Msg("listing status updated")
	return s.repo.UpdateStatus(ctx, id, parsed)
}

func (s *ListingService) Delete(ctx context.Context, landlordID, id int64) error {
	if _, err := s.owned(ctx, landlordID, id); err != nil {
		return err
	}
	s.log.Info().Int64("listing_id", id).Msg("listing deleted")
	return s.repo.Delete(ctx, id)
}

func (s *ListingService) PendingReview(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.FindByFilter(ctx, domain.ListingFilter{Status: domain.ListingPending})
}

// Review settles a pending listing: approval publishes it, rejection takes
// it offline. Only pending listings can be reviewed.
func (s *ListingService) Review(ctx context.Context, id int64, approved bool) (*domain.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.Status != domain.ListingPending {
		return nil, domain.ErrInvalidListingStatus
	}

	next := domain.ListingOffline
	if approved {
		next = domain.ListingAvailable
	}

	s.log.Info().Int64("listing_id", id).Bool("approved", approved).Msg("listing reviewed")
	return s.repo.UpdateStatus(ctx, id, next)
}

// Trending returns the currently most-viewed available listings.
func (s *ListingService) Trending(ctx context.Context, n int64) ([]domain.Listing, error) {
	ids, err := s.trending.TopListingIDs(ctx, n)
	if err != nil {
		return nil, err
	}

	listings := make([]domain.Listing, 0, len(ids))
	for _, id := range ids {
		listing, err := s.repo.FindByID(ctx, id)
		if errors.Is(err, domain.ErrListingNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if listing.Status == domain.ListingAvailable {
			listings = append(listings, *listing)
		}
	}
	return listings, nil
}

// owned loads a listing and checks the caller is its landlord.
func (s *ListingService) owned(ctx context.Context, landlordID, id int64) (*domain.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.LandlordID != landlordID {
		return nil, domain.ErrForbidden
	}
	return listing, nil
}
