package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	contribsession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/userhub/userhub/internal/api/handler"
	"github.com/userhub/userhub/internal/api/middleware"
	"github.com/userhub/userhub/internal/api/session"
	"github.com/userhub/userhub/internal/core/ports"
)

// Config carries the router's deployment knobs.
type Config struct {
	// SessionSecret signs the session cookie.
	SessionSecret string
	// Metrics enables the echoprometheus middleware and the /metrics
	// endpoint. Tests leave it off to avoid re-registering collectors in
	// the default registry.
	Metrics bool
	// Logger receives request logs and handler errors.
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(auth ports.AuthService, cfg Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	sessions := session.NewManager(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	e.Use(contribsession.Middleware(session.NewStore(cfg.SessionSecret)))
	e.Use(middleware.LoadSession(sessions))
	if cfg.Metrics {
		e.Use(echoprometheus.NewMiddleware("userhub"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(auth, sessions, cfg.Logger)
	pageHandler := handler.NewPageHandler(auth)
	healthHandler := handler.NewHealthHandler()

	requireSession := middleware.RequireSession()
	requireAdmin := middleware.RequireAdmin()

	// --- Public routes ---
	e.GET("/", pageHandler.Home)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)
	e.GET("/logout", authHandler.Logout)
	e.GET("/health", healthHandler.Liveness)

	// --- Session-gated routes ---
	e.GET("/homePage", pageHandler.Dashboard, requireSession)
	e.GET("/users", pageHandler.Users, requireSession, requireAdmin)
	e.GET("/debug-users", pageHandler.DebugUsers, requireSession, requireAdmin)

	return e, nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	})
}
