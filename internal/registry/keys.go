package registry

import (
	"github.com/nfrund/formdocs/internal/content"
	"github.com/nfrund/formdocs/internal/pubsub"
	"github.com/nfrund/formdocs/internal/rendering"
)

// Core service keys. The server fills them before modules register.
var (
	ContentKey    = Key[*content.Holder]("core.content")
	RendererKey   = Key[rendering.Renderer]("core.renderer")
	PublisherKey  = Key[pubsub.Publisher]("core.publisher")
	SubscriberKey = Key[pubsub.Subscriber]("core.subscriber")
)
