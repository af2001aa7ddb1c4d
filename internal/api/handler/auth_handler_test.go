package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	contribsession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/userhub/internal/api"
	"github.com/userhub/userhub/internal/api/handler"
	"github.com/userhub/userhub/internal/api/middleware"
	"github.com/userhub/userhub/internal/api/session"
	"github.com/userhub/userhub/internal/core/domain"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (*domain.User, error)
	signupFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	usersFn  func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.signupFn(ctx, username, email, password)
}

func (s *stubAuthService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.usersFn(ctx)
}

func newAuthEcho(t *testing.T, svc *stubAuthService) *echo.Echo {
	t.Helper()

	e := echo.New()
	renderer, err := api.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()

	sessions := session.NewManager(zerolog.Nop())
	e.Use(contribsession.Middleware(session.NewStore("test-secret")))
	e.Use(middleware.LoadSession(sessions))

	h := handler.NewAuthHandler(svc, sessions, zerolog.Nop())
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.GET("/signup", h.SignupPage)
	e.POST("/signup", h.Signup)
	e.GET("/logout", h.Logout)

	return e
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_LoginPage(t *testing.T) {
	e := newAuthEcho(t, &stubAuthService{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "class=\"error\"") {
		t.Fatalf("fresh form must render without an error")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("service must not be called for an incomplete form")
			return nil, nil
		},
	}
	e := newAuthEcho(t, svc)

	rec := postForm(e, "/login", url.Values{"email": {"a@example.com"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("validation failures re-render the form with 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "All fields are required.") {
		t.Fatalf("expected literal validation message, got: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	for name, err := range map[string]error{
		"unknown email":  domain.ErrUserNotFound,
		"wrong password": domain.ErrInvalidCredentials,
	} {
		svc := &stubAuthService{
			loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return nil, err
			},
		}
		e := newAuthEcho(t, svc)

		rec := postForm(e, "/login", url.Values{"email": {"a@example.com"}, "password": {"nope"}})

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Invalid email or password.") {
			t.Fatalf("%s: expected the shared credential message", name)
		}
		if len(rec.Result().Cookies()) != 0 {
			t.Fatalf("%s: failed login must not create a session", name)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: 1, Username: "alice", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	e := newAuthEcho(t, svc)

	rec := postForm(e, "/login", url.Values{"email": {"alice@example.com"}, "password": {"secret"}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/homePage" {
		t.Fatalf("expected redirect to /homePage, got %s", loc)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Name != session.CookieName {
		t.Fatalf("expected a %s cookie, got %+v", session.CookieName, cookies)
	}
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("service must not be called for an incomplete form")
			return nil, nil
		},
	}
	e := newAuthEcho(t, svc)

	rec := postForm(e, "/signup", url.Values{
		"username": {""},
		"email":    {"new@example.com"},
		"password": {"pass"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "All fields are required.") {
		t.Fatalf("expected literal validation message")
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	e := newAuthEcho(t, svc)

	rec := postForm(e, "/signup", url.Values{
		"username": {"eve"},
		"email":    {"admin@example.com"},
		"password": {"pass"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already registered.") {
		t.Fatalf("expected duplicate email message")
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &stubAuthService{
		signupFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return &domain.User{ID: 4, Username: username, Email: email, Role: domain.RoleUser}, nil
		},
	}
	e := newAuthEcho(t, svc)

	rec := postForm(e, "/signup", url.Values{
		"username": {"newbie"},
		"email":    {"new@example.com"},
		"password": {"pass"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("signup must send the user to the login form, got %s", loc)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("signup must not log the user in")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return &domain.User{ID: 2, Username: "bob", Email: email, Role: domain.RoleUser}, nil
		},
	}
	e := newAuthEcho(t, svc)

	rec := postForm(e, "/login", url.Values{"email": {"bob@example.com"}, "password": {"pass"}})
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}
	cleared := rec.Result().Cookies()
	if len(cleared) == 0 || cleared[0].MaxAge >= 0 {
		t.Fatalf("logout must clear the session cookie, got %+v", cleared)
	}
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	e := newAuthEcho(t, &stubAuthService{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}
}
