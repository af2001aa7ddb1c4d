// Package session manages the server-held browsing session. The session
// carries a snapshot of the user identity taken at login; it is destroyed on
// logout and is never persisted across restarts.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	contribsession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/userhub/internal/core/domain"
)

// CookieName matches the cookie express-session issues by default, which the
// original deployment's clients already carry.
const CookieName = "connect.sid"

const (
	keyUserID   = "user_id"
	keyUsername = "username"
	keyEmail    = "email"
	keyRole     = "role"
)

// NewStore builds the signed cookie store sessions live in. MaxAge 0 keeps
// the cookie scoped to the browser session, mirroring the in-memory lifetime
// of the rest of the system.
func NewStore(secret string) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(0)
	return store
}

// Manager resolves, writes and destroys the request session. A session record
// is only materialised on first write; anonymous browsing never sets a cookie.
type Manager struct {
	cookieName string
	log        zerolog.Logger
}

func NewManager(log zerolog.Logger) *Manager {
	return &Manager{cookieName: CookieName, log: log}
}

// Principal returns the identity stored in the request session, if any.
func (m *Manager) Principal(c echo.Context) (*domain.SessionUser, bool) {
	sess, err := contribsession.Get(m.cookieName, c)
	if err != nil || sess == nil {
		return nil, false
	}

	id, ok := sess.Values[keyUserID].(int)
	if !ok {
		return nil, false
	}
	username, _ := sess.Values[keyUsername].(string)
	email, _ := sess.Values[keyEmail].(string)
	role, _ := sess.Values[keyRole].(string)

	return &domain.SessionUser{ID: id, Username: username, Email: email, Role: role}, true
}

// Establish writes a snapshot of the user into the session and saves the
// cookie. The snapshot is independent of the stored record: later role
// changes do not propagate until the next login.
func (m *Manager) Establish(c echo.Context, u *domain.User) error {
	sess, err := contribsession.Get(m.cookieName, c)
	if sess == nil {
		return err
	}

	sess.Values[keyUserID] = u.ID
	sess.Values[keyUsername] = u.Username
	sess.Values[keyEmail] = u.Email
	sess.Values[keyRole] = u.Role

	return sess.Save(c.Request(), c.Response())
}

// Destroy discards the session record and instructs the client to forget its
// cookie.
func (m *Manager) Destroy(c echo.Context) error {
	sess, err := contribsession.Get(m.cookieName, c)
	if sess == nil {
		return err
	}

	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1

	return sess.Save(c.Request(), c.Response())
}
