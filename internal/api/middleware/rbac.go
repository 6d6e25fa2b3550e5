package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

// RequireAuthenticated admits any request with a valid identity and rejects
// anonymous ones with ErrUnauthenticated (401 via the error handler).
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireRoles admits identities whose role is in the allowed set. Anonymous
// requests fail with ErrUnauthenticated (log in again); authenticated
// requests with the wrong role fail with ErrForbidden (lacking permission).
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
