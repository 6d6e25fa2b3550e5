package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/token"
)

func runAuthenticate(t *testing.T, codec *token.Codec, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(codec, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return c, rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue(7, "alice", domain.RoleLandlord)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, rec := runAuthenticate(t, codec, "Bearer "+signed)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	identity, ok := IdentityFrom(c)
	if !ok {
		t.Fatalf("expected identity to be attached")
	}
	if identity.UserID != 7 || identity.Username != "alice" || identity.Role != domain.RoleLandlord {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	ctxIdentity, ok := domain.IdentityFromContext(c.Request().Context())
	if !ok {
		t.Fatalf("expected identity in request context")
	}
	if ctxIdentity != identity {
		t.Fatalf("context identity %+v differs from echo identity %+v", ctxIdentity, identity)
	}
}

func TestAuthenticate_LowercaseSchemeAccepted(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue(7, "alice", domain.RoleTenant)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, _ := runAuthenticate(t, codec, "bearer "+signed)
	if _, ok := IdentityFrom(c); !ok {
		t.Fatalf("expected identity for lowercase scheme")
	}
}

func TestAuthenticate_AnonymousFallthrough(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)

	headers := map[string]string{
		"missing header":  "",
		"wrong scheme":    "Token abc",
		"no scheme":       "justonetoken",
		"malformed token": "Bearer not-a-token",
	}

	wrongKey, err := token.NewCodec("other-secret", time.Hour).Issue(7, "alice", domain.RoleTenant)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	headers["bad signature"] = "Bearer " + wrongKey

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":      int64(7),
		"username": "alice",
		"role":     "tenant",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	expiredSigned, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	headers["expired token"] = "Bearer " + expiredSigned

	for name, header := range headers {
		c, rec := runAuthenticate(t, codec, header)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected fallthrough to handler, got %d", name, rec.Code)
		}
		if _, ok := IdentityFrom(c); ok {
			t.Fatalf("%s: expected anonymous request, identity was set", name)
		}
	}
}

func TestAuthenticate_UnknownRoleStaysAnonymous(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue(7, "alice", domain.Role("superuser"))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, rec := runAuthenticate(t, codec, "Bearer "+signed)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := IdentityFrom(c); ok {
		t.Fatalf("expected anonymous request for unknown role claim")
	}
}
