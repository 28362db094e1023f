package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/formdocs/internal/config"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/module"
	appmiddleware "github.com/nfrund/formdocs/internal/middleware"
	"github.com/nfrund/formdocs/internal/pubsub"
	"github.com/nfrund/formdocs/internal/rendering"
	"github.com/nfrund/formdocs/internal/view"
)

// Dependencies are the services the server is built from.
type Dependencies struct {
	Config   config.Provider
	Content  *content.Holder
	Renderer rendering.Renderer
	// Publisher receives content.reloaded events. Optional.
	Publisher pubsub.Publisher
	// Loader is watched for changes when hot reload is enabled. Optional.
	Loader *content.Loader
	// Echo lets tests supply their own instance. Optional.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Content  *content.Holder
	Renderer rendering.Renderer

	publisher pubsub.Publisher
	loader    *content.Loader
	modules   []module.Module
}

// New creates a new Server instance with the global middleware installed.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Content == nil || deps.Content.Current() == nil {
		return nil, errors.New("server: content store is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}
	secret := deps.Config.GetSessionSecret()
	if len(secret) < 16 {
		return nil, fmt.Errorf("server: session secret must be at least 16 bytes, got %d", len(secret))
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}

	s := &Server{
		E:         e,
		Cfg:       deps.Config,
		Content:   deps.Content,
		Renderer:  deps.Renderer,
		publisher: deps.Publisher,
		loader:    deps.Loader,
	}

	setupErrorHandling(e, s.Content, s.Renderer)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			appmiddleware.FromContext(c.Request().Context()).Error("Recovered from panic",
				"error", err,
				"stack_trace", string(stack),
			)
			return err
		},
	}))
	e.Use(requestLogger())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(appmiddleware.Language(s.Content))

	if deps.Config.GetHotReload() {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(view.LiveReloadKey, true)
				return next(c)
			}
		})
	}

	return s, nil
}

// requestLogger logs one line per request through slog.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			appmiddleware.FromContext(c.Request().Context()).Log(c.Request().Context(), level, "request",
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	})
}
