package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/domain"
	"showcase/internal/eventbus"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
	done   chan struct{}
}

func recordEvents(bus eventbus.EventBus, types ...eventbus.EventType) *eventRecorder {
	r := &eventRecorder{done: make(chan struct{}, 8)}
	for _, typ := range types {
		bus.Subscribe(typ, func(e eventbus.DomainEvent) {
			r.mu.Lock()
			r.events = append(r.events, e)
			r.mu.Unlock()
			if e.Type() == eventbus.EventItemsLoaded || e.Type() == eventbus.EventLoadFailed {
				r.done <- struct{}{}
			}
		})
	}
	return r
}

func (r *eventRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for load result")
	}
}

func (r *eventRecorder) snapshot() []eventbus.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]eventbus.DomainEvent(nil), r.events...)
}

var loadEvents = []eventbus.EventType{
	eventbus.EventLoadStarted, eventbus.EventItemsLoaded, eventbus.EventLoadFailed,
}

func TestLoaderPublishesItems(t *testing.T) {
	bus := eventbus.New()
	rec := recordEvents(bus, loadEvents...)
	l := NewLoader(bus, &stubSource{key: "stub", products: wantProducts})

	require.NoError(t, l.Load(context.Background()))
	rec.wait(t)
	l.Stop()

	events := rec.snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, eventbus.LoadStartedEvent{Source: "stub"}, events[0])
	loaded, ok := events[1].(eventbus.ItemsLoadedEvent)
	require.True(t, ok)
	assert.Equal(t, wantProducts, loaded.Products)
	assert.False(t, loaded.Stale)
}

func TestLoaderPublishesFailure(t *testing.T) {
	bus := eventbus.New()
	rec := recordEvents(bus, loadEvents...)
	boom := errors.New("offline")
	l := NewLoader(bus, &stubSource{key: "stub", err: boom})

	require.NoError(t, l.Load(context.Background()))
	rec.wait(t)
	l.Stop()

	events := rec.snapshot()
	require.Len(t, events, 2)
	failed, ok := events[1].(eventbus.LoadFailedEvent)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, boom)
}

func TestLoaderReportsStaleCache(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()
	require.NoError(t, cache.Put("stub", wantProducts, time.Now()))

	bus := eventbus.New()
	rec := recordEvents(bus, loadEvents...)
	l := NewLoader(bus, NewCachedSource(&stubSource{key: "stub", err: errors.New("offline")}, cache))

	require.NoError(t, l.Load(context.Background()))
	rec.wait(t)
	l.Stop()

	loaded, ok := rec.snapshot()[1].(eventbus.ItemsLoadedEvent)
	require.True(t, ok)
	assert.True(t, loaded.Stale)
	assert.Len(t, loaded.Products, 2)
}

type blockingSource struct {
	release chan struct{}
}

func (b *blockingSource) Key() string { return "blocking" }

func (b *blockingSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	select {
	case <-b.release:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestLoaderRejectsConcurrentLoad(t *testing.T) {
	bus := eventbus.New()
	src := &blockingSource{release: make(chan struct{})}
	l := NewLoader(bus, src)

	require.NoError(t, l.Load(context.Background()))
	assert.ErrorIs(t, l.Load(context.Background()), ErrLoadInProgress)

	close(src.release)
	l.Stop()
}

func TestLoaderStopCancelsQuietly(t *testing.T) {
	bus := eventbus.New()
	rec := recordEvents(bus, loadEvents...)
	l := NewLoader(bus, &blockingSource{release: make(chan struct{})})

	require.NoError(t, l.Load(context.Background()))
	l.Stop()

	events := rec.snapshot()
	require.Len(t, events, 1, "a cancelled load publishes no result")
	assert.Equal(t, eventbus.EventLoadStarted, events[0].Type())
	require.NoError(t, l.Load(context.Background()), "loader is reusable after stop")
	l.Stop()
}

func TestLoadRequestedEventTriggersLoad(t *testing.T) {
	bus := eventbus.New()
	rec := recordEvents(bus, loadEvents...)
	l := NewLoader(bus, &stubSource{key: "stub", products: wantProducts})

	bus.Publish(eventbus.LoadRequestedEvent{})
	rec.wait(t)
	l.Stop()

	assert.Len(t, rec.snapshot(), 2)
}
