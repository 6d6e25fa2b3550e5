package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

type stubFavoriteRepo struct {
	favorites map[[2]int64]*domain.Favorite
	nextID    int64
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{favorites: make(map[[2]int64]*domain.Favorite)}
}

func (r *stubFavoriteRepo) Create(_ context.Context, favorite *domain.Favorite) (*domain.Favorite, error) {
	r.nextID++
	clone := *favorite
	clone.ID = r.nextID
	r.favorites[[2]int64{favorite.UserID, favorite.ListingID}] = &clone
	return &clone, nil
}

func (r *stubFavoriteRepo) Delete(_ context.Context, userID, listingID int64) error {
	delete(r.favorites, [2]int64{userID, listingID})
	return nil
}

func (r *stubFavoriteRepo) Exists(_ context.Context, userID, listingID int64) (bool, error) {
	_, ok := r.favorites[[2]int64{userID, listingID}]
	return ok, nil
}

func (r *stubFavoriteRepo) FindByUser(_ context.Context, userID int64) ([]domain.Favorite, error) {
	var out []domain.Favorite
	for key, f := range r.favorites {
		if key[0] == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func newFavoriteFixture() (*FavoriteService, *stubFavoriteRepo, *stubListingRepo) {
	favorites := newStubFavoriteRepo()
	listings := newStubListingRepo()
	svc := NewFavoriteService(favorites, listings, zerolog.Nop())
	return svc, favorites, listings
}

func TestFavoriteService_AddIdempotent(t *testing.T) {
	svc, _, listings := newFavoriteFixture()
	listing := seedListing(listings, 1, domain.ListingAvailable)

	first, err := svc.Add(context.Background(), 7, listing.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	// A second add succeeds without creating another record.
	if _, err := svc.Add(context.Background(), 7, listing.ID); err != nil {
		t.Fatalf("repeat add: %v", err)
	}
	saved, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(saved))
	}
}

func TestFavoriteService_AddMissingListing(t *testing.T) {
	svc, _, _ := newFavoriteFixture()

	if _, err := svc.Add(context.Background(), 7, 999); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestFavoriteService_RemoveAndCheck(t *testing.T) {
	svc, _, listings := newFavoriteFixture()
	listing := seedListing(listings, 1, domain.ListingAvailable)

	if _, err := svc.Add(context.Background(), 7, listing.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if ok, _ := svc.IsFavorited(context.Background(), 7, listing.ID); !ok {
		t.Fatalf("expected favorited")
	}

	if err := svc.Remove(context.Background(), 7, listing.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if ok, _ := svc.IsFavorited(context.Background(), 7, listing.ID); ok {
		t.Fatalf("expected not favorited after remove")
	}

	// Removing a favorite that does not exist is not an error.
	if err := svc.Remove(context.Background(), 7, listing.ID); err != nil {
		t.Fatalf("repeat remove: %v", err)
	}
}
