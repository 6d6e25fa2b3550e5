package ports

import (
	"context"
	"time"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// InquiryRepository persists tenant inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error)
	FindByID(ctx context.Context, id int64) (*domain.Inquiry, error)
	FindByTenant(ctx context.Context, tenantID int64) ([]domain.Inquiry, error)
	FindByLandlord(ctx context.Context, landlordID int64, status domain.InquiryStatus) ([]domain.Inquiry, error)
	Update(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
