package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"

	prefsSessionName = "formdocs-prefs"
	prefsLangKey     = "lang"
	localizerKey     = "formdocs.localizer"
)

// Language resolves the language of each request and stores a Localizer on
// the echo context. The content store is read once per request, so a reload
// in the middle of a request never mixes two mappings in one page.
//
// Resolution order: the ?lang= parameter (remembered in the session when it
// names a supported language), the session, Accept-Language, the default.
func Language(holder *content.Holder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store := holder.Current()
			lang := resolveLanguage(c, store)
			c.Set(localizerKey, store.For(lang))
			With(c, "lang", lang)
			return next(c)
		}
	}
}

// LocalizerFrom returns the Localizer stored by the Language middleware.
func LocalizerFrom(c echo.Context) (content.Localizer, bool) {
	l, ok := c.Get(localizerKey).(content.Localizer)
	return l, ok
}

// WithLocalizer stores l on the context; used by tests and fragment handlers.
func WithLocalizer(c echo.Context, l content.Localizer) {
	c.Set(localizerKey, l)
}

func resolveLanguage(c echo.Context, store *content.Store) string {
	if q := strings.TrimSpace(c.QueryParam(LangParam)); q != "" && store.Supported(q) {
		tag := store.Resolve(q)
		rememberLanguage(c, tag.String())
		return tag.String()
	}

	if sess, err := session.Get(prefsSessionName, c); err == nil {
		if v, ok := sess.Values[prefsLangKey].(string); ok && store.Supported(v) {
			return v
		}
	}

	if accept := strings.TrimSpace(c.Request().Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			for _, tag := range tags {
				if store.Supported(tag.String()) {
					return store.Resolve(tag.String()).String()
				}
			}
		}
	}

	return store.DefaultLanguage().String()
}

func rememberLanguage(c echo.Context, lang string) {
	sess, err := session.Get(prefsSessionName, c)
	if err != nil {
		return
	}
	if current, _ := sess.Values[prefsLangKey].(string); current == lang {
		return
	}
	sess.Values[prefsLangKey] = lang
	sess.Options.Path = "/"
	sess.Options.SameSite = http.SameSiteLaxMode
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		FromContext(c.Request().Context()).Warn("failed to persist language preference", "error", err)
	}
}
