package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/userhub/internal/api/session"
	"github.com/userhub/userhub/internal/core/domain"
)

const principalKey = "principal"

// Principal returns the session identity loaded by LoadSession, or nil for
// anonymous requests.
func Principal(c echo.Context) *domain.SessionUser {
	p, _ := c.Get(principalKey).(*domain.SessionUser)
	return p
}

// LoadSession resolves the request session once and exposes its principal to
// guards, handlers and templates. Anonymous requests pass through untouched.
func LoadSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if p, ok := sessions.Principal(c); ok {
				c.Set(principalKey, p)
			}
			return next(c)
		}
	}
}

// RequireSession redirects anonymous requests to the landing page. No error
// page and no error status: the rejection is a bare 302.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Principal(c) == nil {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

// RequireAdmin redirects to the dashboard unless the session principal holds
// the admin role. On its own it sends even anonymous requests to the
// dashboard, whose session guard then bounces them to the landing page;
// routes chain RequireSession first so that double hop stays internal.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)
			if p == nil || !p.IsAdmin() {
				return c.Redirect(http.StatusFound, "/homePage")
			}
			return next(c)
		}
	}
}
