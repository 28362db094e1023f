package livereload

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/module"
	"github.com/nfrund/formdocs/internal/registry"
	"github.com/nfrund/formdocs/internal/websocket"
)

// Path is the WebSocket endpoint browsers connect to.
const Path = "/dev/livereload"

// BridgeKey exposes the bridge to other modules and tests.
var BridgeKey = registry.Key[*websocket.Bridge]("livereload.bridge")

// LiveReloadModule tells open browsers to reload when the content mapping
// changes on disk. It is only enabled together with content hot reload.
type LiveReloadModule struct {
	module.BaseModule
	bridge *websocket.Bridge
}

// New creates a new instance of the LiveReloadModule.
func New() *LiveReloadModule {
	return &LiveReloadModule{}
}

// Name returns the unique name for the module.
func (m *LiveReloadModule) Name() string {
	return "livereload"
}

// Register creates the bridge and registers it in the service locator.
func (m *LiveReloadModule) Register(reg *registry.Registry) error {
	m.bridge = websocket.NewBridge(registry.MustGet(reg, registry.SubscriberKey))
	return registry.Provide(reg, BridgeKey, m.bridge)
}

// Boot subscribes the bridge to reload events and mounts the socket.
func (m *LiveReloadModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting LiveReloadModule", "path", Path)
	if err := m.bridge.Start(ctx); err != nil {
		return err
	}
	g.GET(Path, m.bridge.Handler())
	return nil
}

// Shutdown disconnects every browser.
func (m *LiveReloadModule) Shutdown(ctx context.Context) error {
	if m.bridge == nil {
		return nil
	}
	return m.bridge.Shutdown(ctx)
}
