package server

import (
	"context"
	"log/slog"
)

// Shutdown stops the modules, then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")
	s.shutdownModules(ctx)
	return s.E.Shutdown(ctx)
}
