// Package events implements the in-process event relay for ledger mutations.
//
// Commands and the dashboard subscribe to mutation topics so that a change
// made through one component is observed by every other mounted component.
// Dispatch is synchronous and ordered; a misbehaving handler is isolated so
// it cannot break other subscribers.
package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Topic identifies one class of ledger mutation event.
type Topic string

const (
	// TopicPracticeAdded fires after a practice is activated.
	TopicPracticeAdded Topic = "sustainability-practice-added"
	// TopicPracticeRemoved fires after a practice is deactivated.
	TopicPracticeRemoved Topic = "sustainability-practice-removed"
	// TopicResourceUsageUpdated fires after a resource usage sample lands.
	TopicResourceUsageUpdated Topic = "resource-usage-updated"
	// TopicCarbonOffsetRecorded fires after a carbon offset lands.
	TopicCarbonOffsetRecorded Topic = "carbon-offset-recorded"
	// TopicDataChanged fires after every mutation, alongside the specific
	// topic, for subscribers that only care that something changed.
	TopicDataChanged Topic = "sustainability-data-changed"
)

// Payload carries the details of one mutation event.
type Payload struct {
	Timestamp    time.Time `json:"timestamp"`
	PracticeID   string    `json:"practice_id,omitempty"`
	ResourceKind string    `json:"resource_kind,omitempty"`
	Amount       float64   `json:"amount,omitempty"`
	Source       string    `json:"source,omitempty"`
}

// Handler receives event payloads. Handlers run synchronously on the
// emitting goroutine, in subscription order.
type Handler func(topic Topic, payload Payload)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous publish/subscribe relay. The zero value is not
// usable; construct with NewBus. A Bus is safe for concurrent use, though
// the ledger's callers are expected to be sequential.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]subscription
	logger zerolog.Logger
}

// NewBus creates an event bus. Handler panics are logged through logger.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		subs:   make(map[Topic][]subscription),
		logger: logger,
	}
}

// Subscribe registers handler for topic and returns an unsubscribe
// function. Components must call the returned function on teardown or the
// handler lives for the bus's lifetime.
func (b *Bus) Subscribe(topic Topic, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		current := b.subs[topic]
		for i, sub := range current {
			if sub.id == id {
				b.subs[topic] = append(current[:i:i], current[i+1:]...)
				return
			}
		}
	}
}

// Emit synchronously invokes every handler subscribed to topic, in
// subscription order. A panicking handler is recovered and logged; the
// remaining handlers still run.
func (b *Bus) Emit(topic Topic, payload Payload) {
	b.mu.Lock()
	// Snapshot so handlers may subscribe/unsubscribe during dispatch.
	subs := make([]subscription, len(b.subs[topic]))
	copy(subs, b.subs[topic])
	b.mu.Unlock()

	for _, sub := range subs {
		b.dispatch(sub, topic, payload)
	}
}

func (b *Bus) dispatch(sub subscription, topic Topic, payload Payload) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("topic", string(topic)).
				Interface("panic", r).
				Msg("event handler panicked")
		}
	}()
	sub.handler(topic, payload)
}

// SubscriberCount reports the number of live subscriptions for topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}
