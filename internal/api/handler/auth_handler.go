package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/userhub/internal/api/metrics"
	"github.com/userhub/userhub/internal/api/middleware"
	"github.com/userhub/userhub/internal/api/session"
	"github.com/userhub/userhub/internal/core/domain"
	"github.com/userhub/userhub/internal/core/ports"
)

// Validation and credential failures surface as literal strings re-rendered
// on the same form, never as an error page or error status.
const (
	msgFieldsRequired = "All fields are required."
	msgInvalidLogin   = "Invalid email or password."
	msgEmailTaken     = "Email already registered."
)

// AuthHandler serves the login, signup and logout routes.
type AuthHandler struct {
	auth     ports.AuthService
	sessions *session.Manager
	log      zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, sessions *session.Manager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, log: log}
}

type loginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type signupForm struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginPage renders the login form with no error.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageData{User: middleware.Principal(c)})
}

// Login authenticates the submitted credentials and establishes a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
		return h.renderLoginError(c, msgFieldsRequired)
	}
	if err := c.Validate(&form); err != nil {
		metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
		return h.renderLoginError(c, msgFieldsRequired)
	}

	user, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, domain.ErrFieldsRequired):
		metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
		return h.renderLoginError(c, msgFieldsRequired)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidCredentials):
		// Same message either way so the response does not reveal which
		// emails are registered.
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return h.renderLoginError(c, msgInvalidLogin)
	case err != nil:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	if err := h.sessions.Establish(c, user); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()

	return c.Redirect(http.StatusSeeOther, "/homePage")
}

// SignupPage renders the signup form with no error.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", pageData{User: middleware.Principal(c)})
}

// Signup registers a new account and sends the user to the login form; the
// new account is not logged in as a side effect.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		metrics.SignupsTotal.WithLabelValues("missing_fields").Inc()
		return h.renderSignupError(c, msgFieldsRequired)
	}
	if err := c.Validate(&form); err != nil {
		metrics.SignupsTotal.WithLabelValues("missing_fields").Inc()
		return h.renderSignupError(c, msgFieldsRequired)
	}

	_, err := h.auth.Signup(c.Request().Context(), form.Username, form.Email, form.Password)
	switch {
	case errors.Is(err, domain.ErrFieldsRequired):
		metrics.SignupsTotal.WithLabelValues("missing_fields").Inc()
		return h.renderSignupError(c, msgFieldsRequired)
	case errors.Is(err, domain.ErrEmailTaken):
		metrics.SignupsTotal.WithLabelValues("duplicate_email").Inc()
		return h.renderSignupError(c, msgEmailTaken)
	case err != nil:
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Logout destroys the session if one exists and redirects to the landing
// page. A failed destroy is logged and swallowed; the redirect happens
// regardless.
func (h *AuthHandler) Logout(c echo.Context) error {
	if p := middleware.Principal(c); p != nil {
		h.log.Info().Str("username", p.Username).Msg("user logged out")

		if err := h.sessions.Destroy(c); err != nil {
			h.log.Error().Err(err).Msg("session destroy failed")
		} else {
			metrics.SessionsActive.Dec()
		}
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLoginError(c echo.Context, msg string) error {
	return c.Render(http.StatusOK, "login.html", pageData{User: middleware.Principal(c), Error: msg})
}

func (h *AuthHandler) renderSignupError(c echo.Context, msg string) error {
	return c.Render(http.StatusOK, "signup.html", pageData{User: middleware.Principal(c), Error: msg})
}
