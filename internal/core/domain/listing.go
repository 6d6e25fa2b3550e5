package domain

import (
	"strings"
	"time"
)

// ListingStatus represents the lifecycle state of a rental listing.
type ListingStatus string

const (
	ListingPending   ListingStatus = "pending"
	ListingAvailable ListingStatus = "available"
	ListingRented    ListingStatus = "rented"
	ListingOffline   ListingStatus = "offline"
)

// ParseListingStatus validates a raw status value against the closed set.
func ParseListingStatus(raw string) (ListingStatus, error) {
	switch s := ListingStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case ListingPending, ListingAvailable, ListingRented, ListingOffline:
		return s, nil
	default:
		return "", ErrInvalidListingStatus
	}
}

// Listing is a rental property published by a landlord. New listings start
// in pending and become available only after admin review.
type Listing struct {
	ID          int64         `json:"id"`
	LandlordID  int64         `json:"landlordId"`
	Title       string        `json:"title"`
	City        string        `json:"city"`
	Region      string        `json:"region"`
	Bedrooms    int           `json:"bedrooms"`
	Bathrooms   float64       `json:"bathrooms"`
	AreaSqm     float64       `json:"areaSqm"`
	Price       float64       `json:"price"`
	TotalFloors int           `json:"totalFloors,omitempty"`
	Orientation string        `json:"orientation,omitempty"`
	Decoration  string        `json:"decoration,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      ListingStatus `json:"status"`
	ViewCount   int64         `json:"viewCount"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ListingFilter narrows public listing queries. Zero values mean "no
// constraint" for that field.
type ListingFilter struct {
	City     string
	Region   string
	MinPrice float64
	MaxPrice float64
	Bedrooms int
	Status   ListingStatus
	Keyword  string
	Limit    int64
}
