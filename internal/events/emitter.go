package events

import (
	"context"
	"sync"
)

// Emitter publishes envelopes. Implementations must be safe for concurrent
// use.
type Emitter interface {
	Emit(ctx context.Context, e Envelope) error
}

// Nop discards every event. Used when eventing is disabled.
type Nop struct{}

func (Nop) Emit(context.Context, Envelope) error { return nil }

// Bus fans envelopes out to in-process subscribers. Delivery is
// non-blocking: a subscriber whose buffer is full misses the event instead
// of stalling the emitter.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Envelope
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Envelope)}
}

func (b *Bus) Emit(ctx context.Context, e Envelope) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
	return nil
}

// Subscribe registers a listener with the given buffer size and returns the
// event channel plus a cancel func that detaches and closes it.
func (b *Bus) Subscribe(buffer int) (<-chan Envelope, func()) {
	ch := make(chan Envelope, buffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
