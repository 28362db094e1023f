package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/formdocs/internal/module"
	"github.com/nfrund/formdocs/internal/registry"
)

// InitModules registers every module with reg, then boots them on the root
// route group. A module failing either phase aborts startup.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	if err := module.Validate(append(s.modules[:len(s.modules):len(s.modules)], modules...)); err != nil {
		return err
	}
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range modules {
		slog.Debug("Booting module", "module", m.Name())
		if err := m.Boot(ctx, root, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	s.modules = append(s.modules, modules...)
	return nil
}

// shutdownModules stops modules in reverse boot order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
