package pages

import (
	"net/http"
	"strconv"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Error renders the error page for status. 404 uses the localized not-found
// copy; every other status shows the generic server error message unless a
// message is given.
func Error(p view.Page, status int, message string) g.Node {
	if message == "" {
		if status == http.StatusNotFound {
			message = p.L.T(content.KeyNotFound)
		} else {
			message = p.L.T(content.KeyServerError)
		}
	}
	return layouts.Base(p,
		h.Div(
			h.Class("error-page"),
			h.H1(g.Text(strconv.Itoa(status))),
			h.P(g.Text(message)),
			h.P(h.A(h.Href("/"), g.Text(p.L.T(content.KeyHomeTitle)))),
		),
	)
}
