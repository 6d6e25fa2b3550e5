package service

import (
	"context"
	"time"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

// PreferenceService stores one search-preference record per tenant.
type PreferenceService struct {
	prefs ports.PreferenceRepository
}

func NewPreferenceService(prefs ports.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

func (s *PreferenceService) Get(ctx context.Context, userID int64) (*domain.Preference, error) {
	return s.prefs.FindByUser(ctx, userID)
}

// Save upserts the user's preference record; the user id in the payload is
// always taken from the authenticated identity, never from the body.
func (s *PreferenceService) Save(ctx context.Context, userID int64, pref domain.Preference) (*domain.Preference, error) {
	pref.UserID = userID
	pref.UpdatedAt = time.Now().UTC()
	return s.prefs.Upsert(ctx, &pref)
}
