package domain

import "time"

// Favorite marks a listing saved by a user. One row per (user, listing) pair.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ListingID int64     `json:"listingId"`
	CreatedAt time.Time `json:"createdAt"`
}
