package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/rendering"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	p, err := view.NewPage(c, "", "")
	if err != nil {
		return err
	}
	p.Description = p.L.T(content.KeyHomeIntro)
	return h.renderer.RenderPage(c, http.StatusOK, pages.Home(p))
}
