package domain

import "time"

// Preference holds a tenant's saved search criteria. At most one record per
// user; saving again overwrites the existing one.
type Preference struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Budget      int       `json:"budget,omitempty"`
	City        string    `json:"city,omitempty"`
	Region      string    `json:"region,omitempty"`
	Bedrooms    int       `json:"bedrooms,omitempty"`
	Bathrooms   int       `json:"bathrooms,omitempty"`
	MinArea     float64   `json:"minArea,omitempty"`
	MaxArea     float64   `json:"maxArea,omitempty"`
	MinFloors   int       `json:"minFloors,omitempty"`
	MaxFloors   int       `json:"maxFloors,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
	Decoration  string    `json:"decoration,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
