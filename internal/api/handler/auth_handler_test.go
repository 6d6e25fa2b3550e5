package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/ports"
)

type stubAuthService struct {
	loginResult    *ports.LoginResult
	loginErr       error
	registerResult *ports.LoginResult
	registerErr    error
	currentUser    *ports.UserInfo
	currentErr     error
	emailExists    bool
	usernameExists bool

	lastLoginIdentifier string
	lastRegister        ports.RegisterInput
}

func (s *stubAuthService) Login(_ context.Context, usernameOrEmail, _, _ string) (*ports.LoginResult, error) {
	s.lastLoginIdentifier = usernameOrEmail
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*ports.LoginResult, error) {
	s.lastRegister = in
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) CurrentUser(_ context.Context, _ int64) (*ports.UserInfo, error) {
	return s.currentUser, s.currentErr
}

func (s *stubAuthService) EmailExists(_ context.Context, _ string) (bool, error) {
	return s.emailExists, nil
}

func (s *stubAuthService) UsernameExists(_ context.Context, _ string) (bool, error) {
	return s.usernameExists, nil
}

func newAuthContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func envelope() *ports.LoginResult {
	return &ports.LoginResult{
		AccessToken: "signed-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		User:        ports.UserInfo{ID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleTenant},
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{loginResult: envelope()}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(http.MethodPost, "/auth/login", `{"usernameOrEmail":"alice","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["accessToken"] != "signed-token" {
		t.Fatalf("expected accessToken in envelope, got %v", got)
	}
	if got["tokenType"] != "Bearer" {
		t.Fatalf("expected tokenType Bearer, got %v", got["tokenType"])
	}
	user, ok := got["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("expected user projection, got %v", got["user"])
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash must not appear in response")
	}
	if svc.lastLoginIdentifier != "alice" {
		t.Fatalf("expected identifier passed through, got %q", svc.lastLoginIdentifier)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newAuthContext(http.MethodPost, "/auth/login", `{"usernameOrEmail":"alice","password":"wrongpass"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	svc := &stubAuthService{loginResult: envelope()}
	h := NewAuthHandler(svc)

	cases := map[string]string{
		"missing identifier": `{"password":"secret123"}`,
		"short password":     `{"usernameOrEmail":"alice","password":"abc"}`,
	}
	for name, body := range cases {
		c, _ := newAuthContext(http.MethodPost, "/auth/login", body)
		err := h.Login(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %v", name, err)
		}
	}

	c, _ := newAuthContext(http.MethodPost, "/auth/login", `{not-json`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %v", err)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registerResult: envelope()}
	h := NewAuthHandler(svc)

	body := `{"username":"alice","email":"alice@example.com","password":"secret123","role":"landlord","phone":"555-0100"}`
	c, rec := newAuthContext(http.MethodPost, "/auth/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastRegister.Role != "landlord" || svc.lastRegister.Phone != "555-0100" {
		t.Fatalf("unexpected register input: %+v", svc.lastRegister)
	}
}

func TestAuthHandler_Register_DuplicatePassThrough(t *testing.T) {
	svc := &stubAuthService{registerErr: domain.ErrDuplicateEmail}
	h := NewAuthHandler(svc)

	body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
	c, _ := newAuthContext(http.MethodPost, "/auth/register", body)
	if err := h.Register(c); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail to propagate, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{currentUser: &ports.UserInfo{ID: 7, Username: "alice", Role: domain.RoleTenant}}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(http.MethodGet, "/auth/me", "")
	identity := domain.Identity{UserID: 7, Username: "alice", Role: domain.RoleTenant}
	c.SetRequest(c.Request().WithContext(domain.NewIdentityContext(c.Request().Context(), identity)))

	if err := h.Me(c); err != nil {
		t.Fatalf("me: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var info ports.UserInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.ID != 7 || info.Username != "alice" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestAuthHandler_CheckEmail(t *testing.T) {
	svc := &stubAuthService{emailExists: true}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(http.MethodGet, "/auth/check-email?email=alice@example.com", "")
	if err := h.CheckEmail(c); err != nil {
		t.Fatalf("check email: %v", err)
	}
	var resp existsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Exists {
		t.Fatalf("expected exists true")
	}

	c, _ = newAuthContext(http.MethodGet, "/auth/check-email", "")
	err := h.CheckEmail(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("missing email: expected 400, got %v", err)
	}
}
