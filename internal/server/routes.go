package server

import (
	"bytes"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/handlers"
	"github.com/nfrund/formdocs/web"
	"github.com/nfrund/formdocs/web/src/templates/components"
)

// RegisterRoutes sets up the site-wide routes. Feature routes come from the
// modules booted by InitModules.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler(s.Renderer)

	s.E.GET("/", homeHandler.HomeGet)

	// Assets are served from disk while developing so edits show without a
	// rebuild; otherwise from the embedded copy.
	if s.Cfg.GetHotReload() && s.Cfg.GetStaticDir() != "" {
		s.E.Static("/static", s.Cfg.GetStaticDir())
	} else {
		static, _ := fs.Sub(web.FS, "static")
		s.E.StaticFS("/static", static)
	}

	var css bytes.Buffer
	_ = components.WriteHighlightCSS(&css)
	highlightCSS := css.Bytes()
	s.E.GET("/assets/highlight.css", func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
		return c.Blob(http.StatusOK, "text/css; charset=utf-8", highlightCSS)
	})

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
