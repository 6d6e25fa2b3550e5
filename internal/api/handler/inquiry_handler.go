package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

// InquiryHandler handles tenant questions and landlord replies.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type createInquiryRequest struct {
	ListingID int64  `json:"listingId" validate:"required,gt=0"`
	Message   string `json:"message"   validate:"required,max=2000"`
}

type replyInquiryRequest struct {
	Reply string `json:"reply" validate:"required,max=2000"`
}

// Create handles POST /inquiries (tenants only).
func (h *InquiryHandler) Create(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	inquiry, err := h.service.Create(c.Request().Context(), identity.UserID, req.ListingID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inquiry)
}

// Reply handles PUT /inquiries/:id/reply (landlords only, once).
func (h *InquiryHandler) Reply(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req replyInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	inquiry, err := h.service.Reply(c.Request().Context(), identity.UserID, id, req.Reply)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiry)
}

// Close handles PUT /inquiries/:id/close. Only a party to the inquiry may
// close it.
func (h *InquiryHandler) Close(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	inquiry, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if inquiry.TenantID != identity.UserID && inquiry.LandlordID != identity.UserID {
		return domain.ErrForbidden
	}

	closed, err := h.service.Close(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, closed)
}

// Mine handles GET /inquiries/mine for tenants.
func (h *InquiryHandler) Mine(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	inquiries, err := h.service.ForTenant(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}

// ForLandlord handles GET /landlord/inquiries?status=.
func (h *InquiryHandler) ForLandlord(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	inquiries, err := h.service.ForLandlord(c.Request().Context(), identity.UserID, c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiries)
}

// Get handles GET /inquiries/:id.
func (h *InquiryHandler) Get(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	inquiry, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if inquiry.TenantID != identity.UserID && inquiry.LandlordID != identity.UserID && identity.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return c.JSON(http.StatusOK, inquiry)
}
