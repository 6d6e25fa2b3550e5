package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/core/ports"
)

// FavoriteHandler handles saved listings for the authenticated user.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

type favoritedResponse struct {
	Favorited bool `json:"favorited"`
}

// List handles GET /favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	favorites, err := h.service.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favorites)
}

// Add handles POST /favorites/:listingId.
func (h *FavoriteHandler) Add(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	listingID, err := pathID(c, "listingId")
	if err != nil {
		return err
	}

	favorite, err := h.service.Add(c.Request().Context(), identity.UserID, listingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, favorite)
}

// Remove handles DELETE /favorites/:listingId.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	listingID, err := pathID(c, "listingId")
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), identity.UserID, listingID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Check handles GET /favorites/:listingId/status.
func (h *FavoriteHandler) Check(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	listingID, err := pathID(c, "listingId")
	if err != nil {
		return err
	}

	favorited, err := h.service.IsFavorited(c.Request().Context(), identity.UserID, listingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favoritedResponse{Favorited: favorited})
}
