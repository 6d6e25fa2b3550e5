package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// InquiryService implements the tenant/landlord message flow around listings.
type InquiryService interface {
	Create(ctx context.Context, tenantID, listingID int64, message string) (*domain.Inquiry, error)
	Reply(ctx context.Context, landlordID, inquiryID int64, reply string) (*domain.Inquiry, error)
	Close(ctx context.Context, inquiryID int64) (*domain.Inquiry, error)
	Get(ctx context.Context, id int64) (*domain.Inquiry, error)
	ForTenant(ctx context.Context, tenantID int64) ([]domain.Inquiry, error)
	ForLandlord(ctx context.Context, landlordID int64, status string) ([]domain.Inquiry, error)
}
