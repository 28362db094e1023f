package builder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/config"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/middleware"
	"github.com/nfrund/formdocs/internal/modules/builder"
	"github.com/nfrund/formdocs/internal/registry"
	"github.com/nfrund/formdocs/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()

	store, err := content.NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)

	reg := registry.New(&config.Config{RateLimit: 600})
	registry.Set[rendering.Renderer](reg, registry.RendererKey, rendering.NewUniversalRenderer())

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!!"))))
	e.Use(middleware.Language(content.NewHolder(store)))

	m := builder.New()
	require.NoError(t, m.Boot(context.Background(), e.Group(""), reg))

	return &client{t: t, e: e, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	cl.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		cl.cookies[c.Name] = c
	}
	return rec
}

func TestBuilderPage(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodGet, "/form-builder", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Form Builder - React Hook Form</title>")
	assert.Contains(t, body, `<meta name="description" content="GUI for building forms with validation">`)
	assert.Contains(t, body, "No fields yet.")
	assert.Contains(t, body, "<caption>Validation rules</caption>")
}

func TestAddField_HTMX(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodPost, "/form-builder/fields", url.Values{
		"name":      {"firstName"},
		"type":      {"text"},
		"required":  {"true"},
		"maxLength": {"80"},
	}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<div id="builder" class="builder">`)
	assert.Contains(t, body, "Field added.")
	assert.Contains(t, body, "register(&#34;firstName&#34;, {required: true, maxLength: 80})")
	assert.NotContains(t, body, "<html", "htmx responses carry only the panel")

	// The field survives in the session.
	rec = cl.do(http.MethodGet, "/form-builder", nil, false)
	assert.Contains(t, rec.Body.String(), "<code>firstName</code>")
}

func TestAddField_NegativeAndDecimalBounds(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodPost, "/form-builder/fields", url.Values{
		"name": {"temperature"},
		"type": {"number"},
		"min":  {"-10"},
		"max":  {"1.5"},
	}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Field added.")
	assert.Contains(t, body, "register(&#34;temperature&#34;, {min: -10, max: 1.5})")
}

func TestAddField_Invalid(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodPost, "/form-builder/fields", url.Values{
		"name": {"first name"},
		"type": {"text"},
	}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The field definition is not valid. (Name)")
	assert.Contains(t, rec.Body.String(), "No fields yet.")
}

func TestAddField_Duplicate(t *testing.T) {
	cl := newClient(t)
	form := url.Values{"name": {"email"}, "type": {"email"}}

	cl.do(http.MethodPost, "/form-builder/fields", form, true)
	rec := cl.do(http.MethodPost, "/form-builder/fields", form, true)

	assert.Contains(t, rec.Body.String(), "The field definition is not valid.")
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "<code>email</code>"))
}

func TestAddField_PlainFormRedirects(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodPost, "/form-builder/fields", url.Values{"name": {"age"}, "type": {"number"}}, false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/form-builder", rec.Header().Get(echo.HeaderLocation))

	rec = cl.do(http.MethodGet, "/form-builder", nil, false)
	assert.Contains(t, rec.Body.String(), "Field added.", "the flash is shown on the next page")
	assert.Contains(t, rec.Body.String(), "<code>age</code>")
}

func TestDeleteAndReset(t *testing.T) {
	cl := newClient(t)
	for _, name := range []string{"a", "b", "c"} {
		cl.do(http.MethodPost, "/form-builder/fields", url.Values{"name": {name}, "type": {"text"}}, true)
	}

	rec := cl.do(http.MethodPost, "/form-builder/fields/1/delete", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<code>a</code>")
	assert.NotContains(t, rec.Body.String(), "<code>b</code>")
	assert.Contains(t, rec.Body.String(), "<code>c</code>")

	rec = cl.do(http.MethodPost, "/form-builder/fields/7/delete", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = cl.do(http.MethodPost, "/form-builder/reset", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No fields yet.")
}

func TestAddField_Limit(t *testing.T) {
	cl := newClient(t)
	for i := 0; i < builder.MaxFields; i++ {
		cl.do(http.MethodPost, "/form-builder/fields", url.Values{"name": {"f" + string(rune('a'+i))}, "type": {"text"}}, true)
	}

	rec := cl.do(http.MethodPost, "/form-builder/fields", url.Values{"name": {"overflow"}, "type": {"text"}}, true)

	assert.Contains(t, rec.Body.String(), "The field definition is not valid.")
	assert.NotContains(t, rec.Body.String(), "<code>overflow</code>")
	assert.Contains(t, rec.Body.String(), "disabled")
}
