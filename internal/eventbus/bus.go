// Package eventbus is the in-process dispatcher for committed domain events.
//
// Publish calls every subscriber synchronously, in registration order, on the
// caller's goroutine. There is no queueing and no persistence: delivery is
// best effort. A failing or panicking subscriber is logged and skipped; it
// never stops later subscribers and never reaches the publisher, which only
// publishes after its transaction has committed.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// Handler consumes one event. A returned error is logged and otherwise ignored.
type Handler func(ctx context.Context, ev domain.DomainEvent) error

type subscriber struct {
	name    string
	handler Handler
}

// Bus is a synchronous observer list. The zero value is not usable; use New.
type Bus struct {
	mu   sync.RWMutex
	subs []subscriber
	log  *slog.Logger
}

// New creates an empty Bus.
func New(log *slog.Logger) *Bus {
	return &Bus{log: log.With("component", "eventbus")}
}

// Subscribe registers h under name. Subscribers are invoked in the order
// they were registered.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscriber{name: name, handler: h})
}

// Len returns the number of registered subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Publish delivers ev to every registered subscriber.
func (b *Bus) Publish(ctx context.Context, ev domain.DomainEvent) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		if err := b.deliver(ctx, s, ev); err != nil {
			b.log.WarnContext(ctx, "subscriber failed",
				slog.String("subscriber", s.name),
				slog.String("event", ev.Type.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (b *Bus) deliver(ctx context.Context, s subscriber, ev domain.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.handler(ctx, ev)
}
