package ports

import (
	"context"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// PreferenceService implements tenant search preferences.
type PreferenceService interface {
	Get(ctx context.Context, userID int64) (*domain.Preference, error)
	Save(ctx context.Context, userID int64, pref domain.Preference) (*domain.Preference, error)
}
