package app

import (
	"errors"

	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/pubsub"
	"github.com/nfrund/formdocs/internal/registry"
	"github.com/nfrund/formdocs/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Content    *content.Holder
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
}

// Register stores every core service in reg under its registry key.
func (d Dependencies) Register(reg *registry.Registry) error {
	return errors.Join(
		registry.Provide(reg, registry.ContentKey, d.Content),
		registry.Provide(reg, registry.PublisherKey, d.Publisher),
		registry.Provide(reg, registry.SubscriberKey, d.Subscriber),
		registry.Provide(reg, registry.RendererKey, d.Renderer),
	)
}
