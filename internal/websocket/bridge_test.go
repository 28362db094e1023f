package websocket_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/pubsub"
	"github.com/nfrund/formdocs/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_BroadcastsReloads(t *testing.T) {
	ps := pubsub.NewWatermillBridge()
	defer ps.Close()

	bridge := websocket.NewBridge(ps)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, bridge.Start(ctx))

	e := echo.New()
	e.GET("/dev/livereload", bridge.Handler())
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/dev/livereload"
	conn, _, err := gorillaws.DefaultDialer.DialContext(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return bridge.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	err = pubsub.Publish(ctx, ps, content.ReloadedEvent, content.Reloaded{Version: "2024.2", Path: "content.yaml"})
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg websocket.ReloadMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, websocket.ReloadMessage{Type: "reload", Version: "2024.2"}, msg)

	require.NoError(t, conn.WriteMessage(gorillaws.CloseMessage, gorillaws.FormatCloseMessage(gorillaws.CloseNormalClosure, "")))
	require.Eventually(t, func() bool { return bridge.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBridge_Shutdown(t *testing.T) {
	ps := pubsub.NewWatermillBridge()
	defer ps.Close()

	bridge := websocket.NewBridge(ps)
	require.NoError(t, bridge.Start(context.Background()))

	e := echo.New()
	e.GET("/dev/livereload", bridge.Handler())
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/dev/livereload"
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return bridge.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bridge.Shutdown(context.Background()))
	assert.Equal(t, 0, bridge.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, gorillaws.IsCloseError(err, gorillaws.CloseNormalClosure), "server should close the socket, got %v", err)
}
