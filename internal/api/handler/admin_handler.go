package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/core/ports"
)

// AdminHandler exposes the admin-only review and account management surface.
// Route-level role guards ensure only admins reach these handlers.
type AdminHandler struct {
	listings ports.ListingService
	users    ports.UserService
}

func NewAdminHandler(listings ports.ListingService, users ports.UserService) *AdminHandler {
	return &AdminHandler{listings: listings, users: users}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.users.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// PendingListings handles GET /admin/listings/pending, the review queue.
func (h *AdminHandler) PendingListings(c echo.Context) error {
	listings, err := h.listings.PendingReview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// ReviewListing handles PUT /admin/listings/:id/review?approved=.
// Approval publishes the listing; rejection takes it offline.
func (h *AdminHandler) ReviewListing(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}

	listing, err := h.listings.Review(c.Request().Context(), id, approved)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// SetUserActive handles PUT /admin/users/:id/active?enabled=.
// Disabling blocks future logins but does not revoke outstanding tokens.
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	enabled, err := strconv.ParseBool(c.QueryParam("enabled"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "enabled must be true or false")
	}

	user, err := h.users.SetActive(c.Request().Context(), id, enabled)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
