package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/userhub/internal/api/middleware"
	"github.com/userhub/userhub/internal/core/domain"
	"github.com/userhub/userhub/internal/core/ports"
)

// pageData is the payload every view receives. User is the session principal
// (nil for anonymous pages), Users is only populated for admin views.
type pageData struct {
	User  *domain.SessionUser
	Error string
	Users []*domain.User
}

// PageHandler serves the landing page, dashboard and user listing.
type PageHandler struct {
	auth ports.AuthService
}

func NewPageHandler(auth ports.AuthService) *PageHandler {
	return &PageHandler{auth: auth}
}

// Home renders the landing page, or sends signed-in users straight to the
// dashboard.
func (h *PageHandler) Home(c echo.Context) error {
	if middleware.Principal(c) != nil {
		return c.Redirect(http.StatusFound, "/homePage")
	}
	return c.Render(http.StatusOK, "index.html", pageData{})
}

// Dashboard renders the role-gated dashboard: admins see the full user list,
// regular users see the dashboard without one.
func (h *PageHandler) Dashboard(c echo.Context) error {
	p := middleware.Principal(c)

	data := pageData{User: p}
	if p.IsAdmin() {
		users, err := h.auth.Users(c.Request().Context())
		if err != nil {
			return err
		}
		data.Users = users
	}
	return c.Render(http.StatusOK, "homePage.html", data)
}

// Users renders the admin-only user listing.
func (h *PageHandler) Users(c echo.Context) error {
	users, err := h.auth.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "users.html", pageData{User: middleware.Principal(c), Users: users})
}

// DebugUsers dumps all user records as JSON. Password hashes are excluded by
// the domain type's json tags, and the route sits behind the session and
// admin guards.
func (h *PageHandler) DebugUsers(c echo.Context) error {
	users, err := h.auth.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
