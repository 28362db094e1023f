package pages_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/view"
	"github.com/nfrund/formdocs/web/src/templates/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func testPage(t *testing.T, lang string) view.Page {
	t.Helper()
	store, err := content.NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)
	return view.Page{
		Ctx:  context.Background(),
		Path: "/",
		L:    store.For(lang),
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestReference(t *testing.T) {
	p := testPage(t, "en")
	ref, err := p.L.Store().Reference("getFieldState", "en")
	require.NoError(t, err)
	p.Title = ref.Name

	html := render(t, pages.Reference(p, ref))

	assert.Contains(t, html, "<title>getFieldState - React Hook Form</title>")
	assert.Contains(t, html, "<th>Name</th><th>Type</th><th>Description</th>")
	assert.Contains(t, html, `id="examples"`)
	assert.Contains(t, html, `hx-get="/fragments/docs/getfieldstate/examples?tab=0"`)
	assert.Contains(t, html, "https://codesandbox.io/s/getfieldstate-jvekk")
}

func TestReference_Localized(t *testing.T) {
	p := testPage(t, "es")
	ref, err := p.L.Store().Reference("useFieldArray", "es")
	require.NoError(t, err)

	html := render(t, pages.ReferenceBody(p, ref))

	assert.Contains(t, html, "<th>Nombre</th><th>Tipo</th><th>Descripción</th>")
}

func TestExamplesTabs(t *testing.T) {
	p := testPage(t, "en")
	ref, err := p.L.Store().Reference("useFieldArray", "en")
	require.NoError(t, err)
	require.Greater(t, len(ref.Examples), 1)

	group := pages.ExampleGroup(ref)
	group.Select(1)

	html := render(t, pages.ExamplesTabs(p, ref, group))

	assert.Contains(t, html, `id="examples-tab-1" aria-selected="true"`)
	assert.Contains(t, html, `id="examples-tab-0" aria-selected="false"`)
	assert.Contains(t, html, `id="example-1-jsx"`, "only the selected example is rendered")
	assert.NotContains(t, html, `id="example-0-`)
}

func TestVariantGroup(t *testing.T) {
	p := testPage(t, "en")

	t.Run("javascript only", func(t *testing.T) {
		group := pages.VariantGroup(p.L, content.Example{Label: "a", Code: "const a = 1"})
		assert.Equal(t, []string{"JS"}, group.Labels())
	})

	t.Run("with typescript", func(t *testing.T) {
		group := pages.VariantGroup(p.L, content.Example{Label: "a", Code: "const a = 1", TSCode: "const a: number = 1"})
		assert.Equal(t, []string{"JS", "TypeScript"}, group.Labels())

		group.Select(1)
		assert.Equal(t, "tsx", group.ActivePanel().Content.Lang)
	})
}

func TestHome(t *testing.T) {
	html := render(t, pages.Home(testPage(t, "en")))

	assert.Contains(t, html, `href="/docs/getfieldstate"`)
	assert.Contains(t, html, `href="/docs/usefieldarray"`)
	assert.Contains(t, html, `href="/form-builder"`)
}

func TestError(t *testing.T) {
	p := testPage(t, "en")

	t.Run("not found uses localized copy", func(t *testing.T) {
		html := render(t, pages.Error(p, http.StatusNotFound, ""))
		assert.Contains(t, html, "The page you are looking for does not exist.")
	})

	t.Run("explicit message", func(t *testing.T) {
		html := render(t, pages.Error(p, http.StatusBadRequest, "tab index out of range"))
		assert.Contains(t, html, "tab index out of range")
	})
}
