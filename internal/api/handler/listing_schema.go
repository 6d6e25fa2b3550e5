package handler

type listingRequest struct {
	Title       string  `json:"title"       validate:"required,max=200"`
	City        string  `json:"city"        validate:"required,max=50"`
	Region      string  `json:"region"      validate:"required,max=100"`
	Bedrooms    int     `json:"bedrooms"    validate:"required,min=1"`
	Bathrooms   float64 `json:"bathrooms"   validate:"required,gt=0"`
	AreaSqm     float64 `json:"areaSqm"     validate:"required,gt=0"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	TotalFloors int     `json:"totalFloors" validate:"omitempty,min=1"`
	Orientation string  `json:"orientation" validate:"omitempty,oneof=east south west north"`
	Decoration  string  `json:"decoration"  validate:"omitempty,oneof=rough simple fine luxury"`
	Description string  `json:"description"`
}

type listingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
