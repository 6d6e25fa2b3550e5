package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// currentIdentity extracts the identity the authentication middleware
// attached to the request context. Handlers behind a guard can rely on it
// being present; the error return covers handlers reachable anonymously.
func currentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := domain.IdentityFromContext(c.Request().Context())
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
