package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/stretchr/testify/assert"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// setupTestContext returns an echo context that went through the session
// middleware, so session.Get works inside the test.
func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("success flash is read once", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "Field added.")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"Field added."}, flashes.Success)
		assert.Empty(t, flashes.Error)

		again := view.GetFlashData(c)
		assert.True(t, again.Empty(), "flashes should be cleared after being read")
	})

	t.Run("error flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "The field definition is not valid.")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"The field definition is not valid."}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("no flashes", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("no session middleware", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.NotPanics(t, func() { view.SetFlashError(c, "ignored") })
		assert.True(t, view.GetFlashData(c).Empty())
	})
}
