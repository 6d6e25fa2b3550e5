package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/api/metrics"
	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

const trendingLimit = 10

// ListingHandler handles HTTP requests for rental listings.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Browse handles GET /listings with optional filter query parameters
// (city, region, minPrice, maxPrice, bedrooms, keyword). Anonymous callers
// see available listings only.
func (h *ListingHandler) Browse(c echo.Context) error {
	filter := domain.ListingFilter{
		City:    c.QueryParam("city"),
		Region:  c.QueryParam("region"),
		Keyword: c.QueryParam("keyword"),
	}
	filter.MinPrice, _ = strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	filter.Bedrooms, _ = strconv.Atoi(c.QueryParam("bedrooms"))

	listings, err := h.service.Browse(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// Trending handles GET /listings/trending, the most-viewed available
// listings ranked by the Redis view counters.
func (h *ListingHandler) Trending(c echo.Context) error {
	listings, err := h.service.Trending(c.Request().Context(), trendingLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// Get handles GET /listings/:id and records the view.
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Mine handles GET /landlord/listings.
func (h *ListingHandler) Mine(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	listings, err := h.service.Mine(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// Create handles POST /listings. New listings await admin review.
func (h *ListingHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	listing, err := h.service.Create(c.Request().Context(), identity.UserID, toListingInput(req))
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, listing)
}

// Update handles PUT /listings/:id.
func (h *ListingHandler) Update(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	listing, err := h.service.Update(c.Request().Context(), identity.UserID, id, toListingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// UpdateStatus handles PUT /listings/:id/status.
func (h *ListingHandler) UpdateStatus(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req listingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	listing, err := h.service.UpdateStatus(c.Request().Context(), identity.UserID, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Delete handles DELETE /listings/:id.
func (h *ListingHandler) Delete(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity.UserID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toListingInput(req listingRequest) ports.ListingInput {
	return ports.ListingInput{
		Title:       req.Title,
		City:        req.City,
		Region:      req.Region,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqm:     req.AreaSqm,
		Price:       req.Price,
		TotalFloors: req.TotalFloors,
		Orientation: req.Orientation,
		Decoration:  req.Decoration,
		Description: req.Description,
	}
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
