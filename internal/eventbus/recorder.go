package eventbus

import (
	"context"
	"sync"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// Recorder is an in-memory publisher that keeps every event it receives.
// Services accept it in place of a Bus in tests.
type Recorder struct {
	mu     sync.Mutex
	events []domain.DomainEvent
}

// Publish records ev.
func (r *Recorder) Publish(_ context.Context, ev domain.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events in publish order.
func (r *Recorder) Events() []domain.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
