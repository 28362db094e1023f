package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// ID is assigned on publish when empty.
	ID string
	// Topic identifies the channel the message belongs to (e.g., "content.reloaded").
	Topic string
	// Payload contains the raw message data, JSON for typed events.
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages with
	// the handler in the background until ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
