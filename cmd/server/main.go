package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/formdocs/internal/app"
	"github.com/nfrund/formdocs/internal/config"
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/logging"
	"github.com/nfrund/formdocs/internal/pubsub"
	"github.com/nfrund/formdocs/internal/registry"
	"github.com/nfrund/formdocs/internal/rendering"
	"github.com/nfrund/formdocs/internal/server"
	"github.com/nfrund/formdocs/internal/storage"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	opts := []content.LoaderOption{content.WithDefaultLanguage(cfg.GetDefaultLanguage())}
	loader := content.NewEmbeddedLoader(opts...)
	if path := cfg.GetContentPath(); path != "" {
		loader = content.NewLoader(storage.NewOSStore(), path, opts...)
	}

	// Unknown keys and missing default-language entries stop startup here.
	store, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	holder := content.NewHolder(store)
	slog.Info("Content loaded", "path", loader.Path(), "version", store.Version(), "languages", store.Languages())

	ps := pubsub.NewWatermillBridge()
	defer ps.Close()

	renderer := rendering.NewUniversalRenderer()
	reg := registry.New(cfg)
	deps := app.Dependencies{
		Content:    holder,
		Publisher:  ps,
		Subscriber: ps,
		Renderer:   renderer,
	}
	if err := deps.Register(reg); err != nil {
		return err
	}

	var watched *content.Loader
	if cfg.GetContentPath() != "" {
		watched = loader
	}
	s, err := server.New(server.Dependencies{
		Config:    cfg,
		Content:   holder,
		Renderer:  renderer,
		Publisher: ps,
		Loader:    watched,
	})
	if err != nil {
		return err
	}

	if err := s.InitModules(ctx, app.NewModules(cfg), reg); err != nil {
		return err
	}
	s.RegisterRoutes()

	return s.Start(ctx)
}
