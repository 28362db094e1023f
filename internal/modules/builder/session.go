package builder

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "formdocs-builder"
	fieldsKey   = "fields"
)

// getSession returns the builder session. A cookie that no longer decodes,
// e.g. after the session secret changed, yields a fresh session.
func getSession(c echo.Context) (*sessions.Session, error) {
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return nil, fmt.Errorf("builder session: %w", err)
	}
	if err != nil {
		slog.Debug("Discarding unreadable builder session", "error", err)
	}
	return sess, nil
}

// loadFields reads the visitor's field list from the session cookie.
func loadFields(c echo.Context) ([]Field, error) {
	sess, err := getSession(c)
	if err != nil {
		return nil, err
	}
	raw, ok := sess.Values[fieldsKey].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	var fields []Field
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		slog.Warn("Discarding malformed builder fields", "error", err)
		return nil, nil
	}
	return fields, nil
}

func saveFields(c echo.Context, fields []Field) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		delete(sess.Values, fieldsKey)
	} else {
		data, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("encode builder fields: %w", err)
		}
		sess.Values[fieldsKey] = string(data)
	}
	sess.Options.Path = "/form-builder"
	sess.Options.HttpOnly = true
	sess.Options.SameSite = http.SameSiteLaxMode
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save builder session: %w", err)
	}
	return nil
}
