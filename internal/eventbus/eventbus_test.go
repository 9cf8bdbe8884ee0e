package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	var got []int
	b.Subscribe(EventSlideChanged, func(e DomainEvent) {
		got = append(got, e.(SlideChangedEvent).Index)
	})

	for i := 0; i < 5; i++ {
		b.Publish(SlideChangedEvent{Index: i})
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestPublishOnlyMatchingType(t *testing.T) {
	b := New()
	calls := 0
	b.Subscribe(EventItemsLoaded, func(DomainEvent) { calls++ })

	b.Publish(SlideChangedEvent{Index: 1})
	b.Publish(ItemsLoadedEvent{})

	assert.Equal(t, 1, calls)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	first, second := 0, 0
	unsubFirst := b.Subscribe(EventSlideChanged, func(DomainEvent) { first++ })
	b.Subscribe(EventSlideChanged, func(DomainEvent) { second++ })
	require.Equal(t, 2, SubscriberCount(b, EventSlideChanged))

	unsubFirst()
	unsubFirst()
	b.Publish(SlideChangedEvent{Index: 3})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, SubscriberCount(b, EventSlideChanged))
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New()
	delivered := false
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { delivered = true })

	require.NotPanics(t, func() { b.Publish(ErrorEvent{Message: "x"}) })
	assert.True(t, delivered)
}

func TestReentrantPublish(t *testing.T) {
	b := New()
	var order []string
	b.Subscribe(EventLoadRequested, func(DomainEvent) {
		order = append(order, "requested")
		b.Publish(LoadStartedEvent{Source: "test"})
	})
	b.Subscribe(EventLoadStarted, func(DomainEvent) {
		order = append(order, "started")
	})

	b.Publish(LoadRequestedEvent{})

	assert.Equal(t, []string{"requested", "started"}, order)
}
