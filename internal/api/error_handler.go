package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler for a page-serving
// app: validation and credential failures never reach it (handlers re-render
// the form), so anything arriving here is either echo's own routing errors or
// a genuine fault. Faults are logged with their real cause and surfaced as a
// generic page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.String(he.Code, fmt.Sprintf("%v", he.Message))
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.String(http.StatusInternalServerError, "Something went wrong.")
	}
}
