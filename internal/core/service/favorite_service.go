package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

// FavoriteService implements saving listings per user.
type FavoriteService struct {
	favorites ports.FavoriteRepository
	listings  ports.ListingRepository
	log       zerolog.Logger
}

func NewFavoriteService(favorites ports.FavoriteRepository, listings ports.ListingRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{favorites: favorites, listings: listings, log: log}
}

// Add saves a listing for the user. Adding an existing favorite is a no-op
// that succeeds.
func (s *FavoriteService) Add(ctx context.Context, userID, listingID int64) (*domain.Favorite, error) {
	if _, err := s.listings.FindByID(ctx, listingID); err != nil {
		return nil, err
	}

	if exists, err := s.favorites.Exists(ctx, userID, listingID); err != nil {
		return nil, err
	} else if exists {
		s.log.Debug().Int64("user_id", userID).Int64("listing_id", listingID).Msg("already favorited")
		return &domain.Favorite{UserID: userID, ListingID: listingID}, nil
	}

	favorite := &domain.Favorite{
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now().UTC(),
	}
	return s.favorites.Create(ctx, favorite)
}

func (s *FavoriteService) Remove(ctx context.Context, userID, listingID int64) error {
	return s.favorites.Delete(ctx, userID, listingID)
}

func (s *FavoriteService) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.favorites.FindByUser(ctx, userID)
}

func (s *FavoriteService) IsFavorited(ctx context.Context, userID, listingID int64) (bool, error) {
	return s.favorites.Exists(ctx, userID, listingID)
}
