package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// PreferenceRepository persists the single preference record per user.
type PreferenceRepository interface {
	FindByUser(ctx context.Context, userID int64) (*domain.Preference, error)
	Upsert(ctx context.Context, pref *domain.Preference) (*domain.Preference, error)
}
