package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

type stubListingRepo struct {
	listings   map[int64]*domain.Listing
	nextID     int64
	lastFilter domain.ListingFilter
}

func newStubListingRepo() *stubListingRepo {
	return &stubListingRepo{listings: make(map[int64]*domain.Listing)}
}

func cloneListing(l *domain.Listing) *domain.Listing {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

func (r *stubListingRepo) Create(_ context.Context, listing *domain.Listing) (*domain.Listing, error) {
	r.nextID++
	created := cloneListing(listing)
	created.ID = r.nextID
	r.listings[created.ID] = cloneListing(created)
	return created, nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id int64) (*domain.Listing, error) {
	if l, ok := r.listings[id]; ok {
		return cloneListing(l), nil
	}
	return nil, domain.ErrListingNotFound
}

func (r *stubListingRepo) FindByFilter(_ context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	r.lastFilter = filter
	var out []domain.Listing
	for _, l := range r.listings {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, *cloneListing(l))
	}
	return out, nil
}

func (r *stubListingRepo) FindByLandlord(_ context.Context, landlordID int64) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, l := range r.listings {
		if l.LandlordID == landlordID {
			out = append(out, *cloneListing(l))
		}
	}
	return out, nil
}

func (r *stubListingRepo) Update(_ context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if _, ok := r.listings[listing.ID]; !ok {
		return nil, domain.ErrListingNotFound
	}
	r.listings[listing.ID] = cloneListing(listing)
	return cloneListing(listing), nil
}

func (r *stubListingRepo) UpdateStatus(_ context.Context, id int64, status domain.ListingStatus) (*domain.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	l.Status = status
	return cloneListing(l), nil
}

func (r *stubListingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *stubListingRepo) IncrementViews(_ context.Context, id int64, delta int64) error {
	if l, ok := r.listings[id]; ok {
		l.ViewCount += delta
	}
	return nil
}

func (r *stubListingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.listings)), nil
}

func (r *stubListingRepo) CountByStatus(_ context.Context, status domain.ListingStatus) (int64, error) {
	var n int64
	for _, l := range r.listings {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

type stubViewRecorder struct {
	recorded []int64
}

func (r *stubViewRecorder) Record(listingID int64) {
	r.recorded = append(r.recorded, listingID)
}

type stubTrending struct {
	ids []int64
}

func (s *stubTrending) TopListingIDs(_ context.Context, n int64) ([]int64, error) {
	if int64(len(s.ids)) > n {
		return s.ids[:n], nil
	}
	return s.ids, nil
}

func newListingFixture() (*ListingService, *stubListingRepo, *stubViewRecorder, *stubTrending) {
	repo := newStubListingRepo()
	views := &stubViewRecorder{}
	trending := &stubTrending{}
	svc := NewListingService(repo, views, trending, zerolog.Nop())
	return svc, repo, views, trending
}

func seedListing(repo *stubListingRepo, landlordID int64, status domain.ListingStatus) *domain.Listing {
	created, _ := repo.Create(context.Background(), &domain.Listing{
		LandlordID: landlordID,
		Title:      "two bedroom flat",
		City:       "Austin",
		Status:     status,
	})
	repo.listings[created.ID] = created
	return created
}

func TestListingService_BrowseDefaults(t *testing.T) {
	svc, repo, _, _ := newListingFixture()

	if _, err := svc.Browse(context.Background(), domain.ListingFilter{}); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if repo.lastFilter.Status != domain.ListingAvailable {
		t.Fatalf("expected default status available, got %q", repo.lastFilter.Status)
	}
	if repo.lastFilter.Limit != defaultBrowseLimit {
		t.Fatalf("expected default limit %d, got %d", defaultBrowseLimit, repo.lastFilter.Limit)
	}
}

func TestListingService_GetRecordsView(t *testing.T) {
	svc, repo, views, _ := newListingFixture()
	listing := seedListing(repo, 1, domain.ListingAvailable)

	got, err := svc.Get(context.Background(), listing.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != listing.ID {
		t.Fatalf("unexpected listing: %+v", got)
	}
	if len(views.recorded) != 1 || views.recorded[0] != listing.ID {
		t.Fatalf("expected one recorded view for %d, got %v", listing.ID, views.recorded)
	}

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
	if len(views.recorded) != 1 {
		t.Fatalf("missing listing must not record a view")
	}
}

func TestListingService_CreateStartsPending(t *testing.T) {
	svc, _, _, _ := newListingFixture()

	created, err := svc.Create(context.Background(), 5, ports.ListingInput{Title: "loft", City: "Austin", Price: 1200})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.ListingPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if created.LandlordID != 5 {
		t.Fatalf("expected landlord 5, got %d", created.LandlordID)
	}
}

func TestListingService_OwnershipEnforced(t *testing.T) {
	svc, repo, _, _ := newListingFixture()
	listing := seedListing(repo, 1, domain.ListingAvailable)

	if _, err := svc.Update(context.Background(), 2, listing.ID, ports.ListingInput{Title: "x"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("update by non-owner: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), 2, listing.ID, "offline"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("status by non-owner: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), 2, listing.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete by non-owner: expected ErrForbidden, got %v", err)
	}

	if err := svc.Delete(context.Background(), 1, listing.ID); err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
}

func TestListingService_UpdateStatusRejectsUnknown(t *testing.T) {
	svc, repo, _, _ := newListingFixture()
	listing := seedListing(repo, 1, domain.ListingAvailable)

	if _, err := svc.UpdateStatus(context.Background(), 1, listing.ID, "vaporized"); !errors.Is(err, domain.ErrInvalidListingStatus) {
		t.Fatalf("expected ErrInvalidListingStatus, got %v", err)
	}
}

func TestListingService_Review(t *testing.T) {
	svc, repo, _, _ := newListingFixture()
	pending := seedListing(repo, 1, domain.ListingPending)

	approved, err := svc.Review(context.Background(), pending.ID, true)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if approved.Status != domain.ListingAvailable {
		t.Fatalf("expected available after approval, got %s", approved.Status)
	}

	// Already settled listings cannot be reviewed again.
	if _, err := svc.Review(context.Background(), pending.ID, false); !errors.Is(err, domain.ErrInvalidListingStatus) {
		t.Fatalf("expected ErrInvalidListingStatus, got %v", err)
	}

	rejected := seedListing(repo, 1, domain.ListingPending)
	reviewed, err := svc.Review(context.Background(), rejected.ID, false)
	if err != nil {
		t.Fatalf("review rejection: %v", err)
	}
	if reviewed.Status != domain.ListingOffline {
		t.Fatalf("expected offline after rejection, got %s", reviewed.Status)
	}
}

func TestListingService_Trending(t *testing.T) {
	svc, repo, _, trending := newListingFixture()
	available := seedListing(repo, 1, domain.ListingAvailable)
	offline := seedListing(repo, 1, domain.ListingOffline)

	// Rank includes a deleted id and an offline listing; both are skipped.
	trending.ids = []int64{available.ID, offline.ID, 999}

	listings, err := svc.Trending(context.Background(), 10)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != available.ID {
		t.Fatalf("expected only the available listing, got %+v", listings)
	}
}
