package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	metaTopic       = "formdocs.topic"
	metaPublishedAt = "formdocs.published_at"
)

// WatermillBridge is the in-process bus, backed by watermill's GoChannel.
// Delivery is fan-out: every subscriber of a topic receives every message
// published after it subscribed.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
	loops   sync.WaitGroup
}

// Option configures a WatermillBridge.
type Option func(*bridgeOptions)

type bridgeOptions struct {
	buffer int64
	logger *slog.Logger
}

// WithOutputBuffer sets how many messages may queue per subscriber before
// Publish blocks.
func WithOutputBuffer(n int64) Option {
	return func(o *bridgeOptions) { o.buffer = n }
}

// WithLogger routes watermill's own logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *bridgeOptions) { o.logger = logger }
}

// NewWatermillBridge initializes the in-memory bus.
func NewWatermillBridge(opts ...Option) *WatermillBridge {
	o := bridgeOptions{buffer: 16, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: o.buffer},
			slogAdapter{logger: o.logger},
		),
		logger: o.logger,
	}
}

func toWatermill(msg Message) *message.Message {
	id := msg.ID
	if id == "" {
		id = watermill.NewUUID()
	}
	wm := message.NewMessage(id, msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(metaTopic, msg.Topic)
	wm.Metadata.Set(metaPublishedAt, time.Now().UTC().Format(time.RFC3339Nano))
	return wm
}

func fromWatermill(wm *message.Message) Message {
	metadata := make(map[string]string, len(wm.Metadata))
	for k, v := range wm.Metadata {
		if k != metaTopic && k != metaPublishedAt {
			metadata[k] = v
		}
	}
	return Message{
		ID:       wm.UUID,
		Topic:    wm.Metadata.Get(metaTopic),
		Payload:  wm.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.channel.Publish(msg.Topic, toWatermill(msg))
}

// Subscribe implements the Subscriber interface. It returns once the
// subscription is active; messages are handled on a separate goroutine, one
// at a time, until ctx is canceled or the bridge is closed.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	wb.loops.Add(1)
	go func() {
		defer wb.loops.Done()
		for wm := range messages {
			if err := handler(ctx, fromWatermill(wm)); err != nil {
				// GoChannel redelivers nacked messages forever; log and ack instead.
				wb.logger.Error("Failed to handle message", "topic", topic, "msg_id", wm.UUID, "error", err)
			}
			wm.Ack()
		}
		wb.logger.Debug("Subscription ended", "topic", topic)
	}()
	return nil
}

// Close shuts the bus down and waits for every subscription loop to return.
func (wb *WatermillBridge) Close() error {
	err := wb.channel.Close()
	wb.loops.Wait()
	return err
}

// slogAdapter implements watermill.LoggerAdapter on top of slog.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) attrs(fields watermill.LogFields) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

func (a slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Error(msg, append(a.attrs(fields), "error", err)...)
}

func (a slogAdapter) Info(msg string, fields watermill.LogFields) {
	// GoChannel reports every subscription at info level.
	a.logger.Debug(msg, a.attrs(fields)...)
}

func (a slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, a.attrs(fields)...)
}

func (a slogAdapter) Trace(msg string, fields watermill.LogFields) {}

func (a slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return slogAdapter{logger: a.logger.With(a.attrs(fields)...)}
}
