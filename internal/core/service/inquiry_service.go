package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

// InquiryService implements the tenant/landlord message flow.
type InquiryService struct {
	inquiries ports.InquiryRepository
	listings  ports.ListingRepository
	log       zerolog.Logger
}

func NewInquiryService(inquiries ports.InquiryRepository, listings ports.ListingRepository, log zerolog.Logger) *InquiryService {
	return &InquiryService{inquiries: inquiries, listings: listings, log: log}
}

// Create opens an inquiry against a listing, capturing the listing's
// landlord so replies need no further lookup.
func (s *InquiryService) Create(ctx context.Context, tenantID, listingID int64, message string) (*domain.Inquiry, error) {
	listing, err := s.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		ListingID:  listingID,
		TenantID:   tenantID,
		LandlordID: listing.LandlordID,
		Message:    message,
		Status:     domain.InquiryPending,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.inquiries.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("inquiry_id", created.ID).Int64("listing_id", listingID).Int64("tenant_id", tenantID).Msg("inquiry created")
	return created, nil
}

// Reply answers a pending inquiry. Only the landlord the inquiry is
// addressed to may reply, and only once.
func (s *InquiryService) Reply(ctx context.Context, landlordID, inquiryID int64, reply string) (*domain.Inquiry, error) {
	inquiry, err := s.inquiries.FindByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry.LandlordID != landlordID {
		return nil, domain.ErrForbidden
	}
	if inquiry.Status == domain.InquiryReplied {
		return nil, domain.ErrInquiryAlreadyReplied
	}

	inquiry.Reply = reply
	inquiry.Status = domain.InquiryReplied
	inquiry.RepliedAt = time.Now().UTC()

	s.log.Info().Int64("inquiry_id", inquiryID).Msg("inquiry replied")
	return s.inquiries.Update(ctx, inquiry)
}

// Close marks an inquiry as closed regardless of its reply state.
func (s *InquiryService) Close(ctx context.Context, inquiryID int64) (*domain.Inquiry, error) {
	inquiry, err := s.inquiries.FindByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	inquiry.Status = domain.InquiryClosed
	s.log.Info().Int64("inquiry_id", inquiryID).Msg("inquiry closed")
	return s.inquiries.Update(ctx, inquiry)
}

func (s *InquiryService) Get(ctx context.Context, id int64) (*domain.Inquiry, error) {
	return s.inquiries.FindByID(ctx, id)
}

func (s *InquiryService) ForTenant(ctx context.Context, tenantID int64) ([]domain.Inquiry, error) {
	return s.inquiries.FindByTenant(ctx, tenantID)
}

// ForLandlord lists a landlord's inquiries, optionally filtered by status.
func (s *InquiryService) ForLandlord(ctx context.Context, landlordID int64, status string) ([]domain.Inquiry, error) {
	return s.inquiries.FindByLandlord(ctx, landlordID, domain.InquiryStatus(status))
}
