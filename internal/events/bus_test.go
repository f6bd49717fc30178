package events

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *Bus {
	return NewBus(zerolog.Nop())
}

func TestTopicNames(t *testing.T) {
	t.Parallel()

	// Topic strings surface in debug logs and payload dumps; pin them so a
	// rename does not silently change the observable event names.
	assert.Equal(t, Topic("sustainability-practice-added"), TopicPracticeAdded)
	assert.Equal(t, Topic("sustainability-practice-removed"), TopicPracticeRemoved)
	assert.Equal(t, Topic("resource-usage-updated"), TopicResourceUsageUpdated)
	assert.Equal(t, Topic("carbon-offset-recorded"), TopicCarbonOffsetRecorded)
	assert.Equal(t, Topic("sustainability-data-changed"), TopicDataChanged)
}

func TestBus_SubscribeEmit(t *testing.T) {
	t.Parallel()

	t.Run("handlers run in subscription order", func(t *testing.T) {
		t.Parallel()
		bus := newTestBus()

		var order []int
		bus.Subscribe(TopicPracticeAdded, func(Topic, Payload) { order = append(order, 1) })
		bus.Subscribe(TopicPracticeAdded, func(Topic, Payload) { order = append(order, 2) })
		bus.Subscribe(TopicPracticeAdded, func(Topic, Payload) { order = append(order, 3) })

		bus.Emit(TopicPracticeAdded, Payload{Timestamp: time.Now()})

		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("payload reaches the handler", func(t *testing.T) {
		t.Parallel()
		bus := newTestBus()

		var got Payload
		bus.Subscribe(TopicResourceUsageUpdated, func(_ Topic, p Payload) { got = p })

		sent := Payload{Timestamp: time.Now(), ResourceKind: "water", Amount: 12.5}
		bus.Emit(TopicResourceUsageUpdated, sent)

		assert.Equal(t, sent, got)
	})

	t.Run("topics are independent", func(t *testing.T) {
		t.Parallel()
		bus := newTestBus()

		calls := 0
		bus.Subscribe(TopicPracticeAdded, func(Topic, Payload) { calls++ })

		bus.Emit(TopicPracticeRemoved, Payload{})
		assert.Equal(t, 0, calls)

		bus.Emit(TopicPracticeAdded, Payload{})
		assert.Equal(t, 1, calls)
	})
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("unsubscribed handler no longer fires", func(t *testing.T) {
		t.Parallel()
		bus := newTestBus()

		calls := 0
		unsubscribe := bus.Subscribe(TopicDataChanged, func(Topic, Payload) { calls++ })

		bus.Emit(TopicDataChanged, Payload{})
		require.Equal(t, 1, calls)

		unsubscribe()
		bus.Emit(TopicDataChanged, Payload{})
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, bus.SubscriberCount(TopicDataChanged))
	})

	t.Run("unsubscribe is idempotent", func(t *testing.T) {
		t.Parallel()
		bus := newTestBus()

		unsubscribe := bus.Subscribe(TopicDataChanged, func(Topic, Payload) {})
		other := bus.Subscribe(TopicDataChanged, func(Topic, Payload) {})

		unsubscribe()
		unsubscribe()

		assert.Equal(t, 1, bus.SubscriberCount(TopicDataChanged))
		other()
		assert.Equal(t, 0, bus.SubscriberCount(TopicDataChanged))
	})
}

func TestBus_PanicIsolation(t *testing.T) {
	t.Parallel()

	bus := newTestBus()

	var survived bool
	bus.Subscribe(TopicPracticeAdded, func(Topic, Payload) { panic("boom") })
	bus.Subscribe(TopicPracticeAdded, func(Topic, Payload) { survived = true })

	require.NotPanics(t, func() {
		bus.Emit(TopicPracticeAdded, Payload{})
	})
	assert.True(t, survived, "handler after the panicking one must still run")
}

func TestBus_SubscribeDuringDispatch(t *testing.T) {
	t.Parallel()

	bus := newTestBus()

	lateCalls := 0
	bus.Subscribe(TopicDataChanged, func(Topic, Payload) {
		bus.Subscribe(TopicDataChanged, func(Topic, Payload) { lateCalls++ })
	})

	// The handler registered mid-dispatch must not run for this emit.
	bus.Emit(TopicDataChanged, Payload{})
	assert.Equal(t, 0, lateCalls)

	bus.Emit(TopicDataChanged, Payload{})
	assert.Equal(t, 1, lateCalls)
}
