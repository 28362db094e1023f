package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/formdocs/internal/content"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is canceled, then shuts down
// gracefully. With hot reload enabled the content file is watched as well.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.Cfg.GetHotReload() && s.loader != nil {
		watcher := content.NewWatcher(s.loader, s.Content, s.publisher)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				slog.Error("Content watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.GetAddr(), "content_version", s.Content.Current().Version())
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("shutting down the server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	return s.Shutdown(shutdownCtx)
}
