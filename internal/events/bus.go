// Package events provides the in-process event bus that decouples state
// writes from the progress aggregation that follows them.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Topics.
const (
	TopicStateChanged = "state.changed" // a user's word states changed
	TopicDailyReset   = "daily.reset"   // the midnight sweep ran
)

// Event is one bus message. UserID is empty for broadcast topics.
type Event struct {
	Topic  string
	UserID string
	At     time.Time
}

// Handler processes one event. Handlers run on bus goroutines and must
// not block indefinitely.
type Handler func(ctx context.Context, ev Event)

// Subscription is the handle returned by Subscribe. Closing it detaches
// the handler; Close is idempotent and safe on every exit path.
type Subscription struct {
	bus     *Bus
	topic   string
	handler Handler
	once    sync.Once
}

// Close detaches the subscription from the bus.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.unsubscribe(s)
	})
}

// Bus is a minimal asynchronous publish/subscribe bus. Delivery is
// at-least-once per live subscription; events published after Close are
// dropped.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	wg     sync.WaitGroup
	closed bool
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[string]map[*Subscription]struct{}),
		logger: logger,
	}
}

// Subscribe attaches handler to topic and returns its handle.
func (b *Bus) Subscribe(topic string, handler Handler) *Subscription {
	sub := &Subscription{bus: b, topic: topic, handler: handler}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return sub
	}
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[*Subscription]struct{})
	}
	b.subs[topic][sub] = struct{}{}
	return sub
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if set, ok := b.subs[sub.topic]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, sub.topic)
		}
	}
}

// Publish dispatches ev to every current subscriber of its topic. Each
// handler runs on its own goroutine so a slow aggregator never blocks
// the publishing request.
func (b *Bus) Publish(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	handlers := make([]Handler, 0, len(b.subs[ev.Topic]))
	for sub := range b.subs[ev.Topic] {
		handlers = append(handlers, sub.handler)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h := h
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("Event handler panicked", "topic", ev.Topic, "panic", r)
				}
			}()
			// Detach from the request context so in-flight handlers
			// survive the HTTP response.
			h(context.WithoutCancel(ctx), ev)
		}()
	}
}

// Close stops accepting events and waits for in-flight handlers.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.subs = make(map[string]map[*Subscription]struct{})
	b.mu.Unlock()

	b.wg.Wait()
}
