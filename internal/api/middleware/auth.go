package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/api/metrics"
	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/token"
)

// identityKey is the echo context key the authenticated identity is stored
// under for the duration of one request.
const identityKey = "identity"

// Authenticate extracts and verifies a bearer token, attaching the resulting
// identity to the request. It runs on every route, public ones included, and
// never rejects: a missing, malformed, or expired token simply leaves the
// request anonymous. Rejection is the guards' job (RequireAuthenticated,
// RequireRoles), not this middleware's.
func Authenticate(codec *token.Codec, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected, continuing as anonymous")
				return next(c)
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			role, err := domain.NormalizeRole(claims.Role)
			if err != nil {
				log.Warn().Str("role", claims.Role).Msg("verified token carries unknown role, continuing as anonymous")
				return next(c)
			}

			identity := domain.Identity{
				UserID:   claims.UserID,
				Username: claims.Username,
				Role:     role,
			}
			c.Set(identityKey, identity)
			c.SetRequest(c.Request().WithContext(domain.NewIdentityContext(c.Request().Context(), identity)))

			return next(c)
		}
	}
}

// IdentityFrom returns the identity attached by Authenticate, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

func verifyResult(err error) string {
	switch err {
	case domain.ErrTokenExpired:
		return "expired"
	case domain.ErrTokenSignatureInvalid:
		return "signature_invalid"
	default:
		return "malformed"
	}
}
