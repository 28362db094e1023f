package module

import (
	"context"
	"fmt"
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/formdocs/internal/registry"
)

// Module is one self-contained site feature: reference pages, the form
// builder, live reload. The server calls Register on every module, then
// Boot on every module, and Shutdown in reverse order when stopping.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register publishes the module's services in the registry. Modules must
	// not look up other modules' services here.
	Register(reg *registry.Registry) error

	// Boot mounts routes on router and starts background work bound to ctx.
	// Every module has registered by now.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases what Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register, Boot and Shutdown methods for
// embedding.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Validate checks that every module has a well-formed, unique name.
func Validate(modules []Module) error {
	seen := make(map[string]bool, len(modules))
	for _, m := range modules {
		name := m.Name()
		if !namePattern.MatchString(name) {
			return fmt.Errorf("module name %q must be lower-case letters, digits or dashes", name)
		}
		if seen[name] {
			return fmt.Errorf("module %q is listed twice", name)
		}
		seen[name] = true
	}
	return nil
}
