package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"showcase/internal/domain"
	"showcase/internal/eventbus"
)

// ErrLoadInProgress is returned when a load is already running
var ErrLoadInProgress = errors.New("load already in progress")

// Loader fetches the product list in the background and publishes the result
type Loader interface {
	Load(ctx context.Context) error
	Stop()
}

// entryFetcher is implemented by sources that can report staleness
type entryFetcher interface {
	FetchEntry(ctx context.Context) ([]domain.Product, time.Time, bool, error)
}

type loader struct {
	bus    eventbus.EventBus
	source Source
	now    func() time.Time

	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoader creates a loader for source. It also answers LoadRequested events.
func NewLoader(bus eventbus.EventBus, source Source) Loader {
	l := &loader{
		bus:    bus,
		source: source,
		now:    time.Now,
	}

	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) {
		if _, ok := e.(eventbus.LoadRequestedEvent); ok {
			if err := l.Load(context.Background()); err != nil {
				log.Printf("Load request ignored: %v", err)
			}
		}
	})

	return l
}

// Load starts a fetch. LoadStarted is published before it returns; the
// outcome arrives later as ItemsLoaded or LoadFailed.
func (l *loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.isLoading {
		l.mu.Unlock()
		return ErrLoadInProgress
	}
	l.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	l.cancelFunc = cancel
	l.mu.Unlock()

	key := l.source.Key()
	l.bus.Publish(eventbus.LoadStartedEvent{Source: key})

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		products, fetchedAt, stale, err := l.fetch(loadCtx)

		l.mu.Lock()
		l.isLoading = false
		l.cancelFunc = nil
		l.mu.Unlock()

		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Printf("Load from %s cancelled", key)
				return
			}
			log.Printf("Load from %s failed: %v", key, err)
			l.bus.Publish(eventbus.LoadFailedEvent{Source: key, Err: err})
			return
		}

		log.Printf("Loaded %d products from %s (stale=%v)", len(products), key, stale)
		l.bus.Publish(eventbus.ItemsLoadedEvent{
			Source:    key,
			Products:  products,
			Stale:     stale,
			FetchedAt: fetchedAt,
		})
	}()

	return nil
}

func (l *loader) fetch(ctx context.Context) ([]domain.Product, time.Time, bool, error) {
	if ef, ok := l.source.(entryFetcher); ok {
		return ef.FetchEntry(ctx)
	}
	products, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("fetch %s: %w", l.source.Key(), err)
	}
	return products, l.now(), false, nil
}

// Stop cancels a running load and waits for it to finish
func (l *loader) Stop() {
	l.mu.Lock()
	if l.cancelFunc != nil {
		l.cancelFunc()
	}
	l.mu.Unlock()

	l.wg.Wait()
}
