package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

// PreferenceHandler handles tenant search preferences.
type PreferenceHandler struct {
	service ports.PreferenceService
}

func NewPreferenceHandler(service ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

type preferenceRequest struct {
	Budget      int     `json:"budget"      validate:"omitempty,gt=0"`
	City        string  `json:"city"        validate:"omitempty,max=50"`
	Region      string  `json:"region"      validate:"omitempty,max=100"`
	Bedrooms    int     `json:"bedrooms"    validate:"omitempty,min=1"`
	Bathrooms   int     `json:"bathrooms"   validate:"omitempty,min=1"`
	MinArea     float64 `json:"minArea"     validate:"omitempty,gt=0"`
	MaxArea     float64 `json:"maxArea"     validate:"omitempty,gt=0"`
	MinFloors   int     `json:"minFloors"   validate:"omitempty,min=1"`
	MaxFloors   int     `json:"maxFloors"   validate:"omitempty,min=1"`
	Orientation string  `json:"orientation" validate:"omitempty,oneof=east south west north"`
	Decoration  string  `json:"decoration"  validate:"omitempty,oneof=rough simple fine luxury"`
}

// Get handles GET /tenant/preferences.
func (h *PreferenceHandler) Get(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	pref, err := h.service.Get(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pref)
}

// Save handles PUT /tenant/preferences, upserting the caller's record.
func (h *PreferenceHandler) Save(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req preferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	pref, err := h.service.Save(c.Request().Context(), identity.UserID, domain.Preference{
		Budget:      req.Budget,
		City:        req.City,
		Region:      req.Region,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		MinArea:     req.MinArea,
		MaxArea:     req.MaxArea,
		MinFloors:   req.MinFloors,
		MaxFloors:   req.MaxFloors,
		Orientation: req.Orientation,
		Decoration:  req.Decoration,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pref)
}
