package broadcast

import (
	"context"
	"sync"
)

// Subscription is one listener attached to a Hub. Messages arrive on C.
// The channel is closed when the subscription is cancelled, the owning
// context ends, or the hub shuts down.
type Subscription[T any] struct {
	// C receives published values.
	C <-chan T

	cancel func()
}

// Cancel detaches the subscription and closes C. It is idempotent.
func (s *Subscription[T]) Cancel() {
	s.cancel()
}

// Hub fans values out to all current subscriptions. All methods are safe
// for concurrent use.
type Hub[T any] struct {
	mu     sync.Mutex
	subs   map[chan T]struct{}
	buffer int
	closed bool
}

// NewHub creates a hub whose subscriptions buffer up to buffer values.
// A minimum buffer of 1 is enforced so sends stay non-blocking.
func NewHub[T any](buffer int) *Hub[T] {
	return &Hub[T]{
		subs:   make(map[chan T]struct{}),
		buffer: max(buffer, 1),
	}
}

// Subscribe attaches a new listener. The subscription is cancelled
// automatically when ctx ends. Subscribing to a closed hub yields a
// subscription whose channel is already closed.
func (h *Hub[T]) Subscribe(ctx context.Context) *Subscription[T] {
	ch := make(chan T, h.buffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return &Subscription[T]{C: ch, cancel: func() {}}
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
			}
			h.mu.Unlock()
		})
	}

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}

	return &Subscription[T]{C: ch, cancel: cancel}
}

// Publish delivers v to every subscription without blocking. Subscribers
// whose buffers are full miss the value.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for ch := range h.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

// Len returns the number of active subscriptions.
func (h *Hub[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close shuts the hub down and closes every subscription channel. It is
// idempotent.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		close(ch)
	}
	clear(h.subs)
}
