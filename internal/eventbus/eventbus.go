package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"showcase/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventLoadRequested = domain.EventLoadRequested
	EventLoadStarted   = domain.EventLoadStarted
	EventItemsLoaded   = domain.EventItemsLoaded
	EventLoadFailed    = domain.EventLoadFailed
	EventSlideChanged  = domain.EventSlideChanged
	EventDragStarted   = domain.EventDragStarted
	EventDragEnded     = domain.EventDragEnded
	EventColorChanged  = domain.EventColorChanged
	EventConfigLoaded  = domain.EventConfigLoaded
	EventConfigSaved   = domain.EventConfigSaved
	EventError         = domain.EventError
)

// Re-export domain event types
type LoadRequestedEvent = domain.LoadRequestedEvent
type LoadStartedEvent = domain.LoadStartedEvent
type ItemsLoadedEvent = domain.ItemsLoadedEvent
type LoadFailedEvent = domain.LoadFailedEvent
type SlideChangedEvent = domain.SlideChangedEvent
type DragStartedEvent = domain.DragStartedEvent
type DragEndedEvent = domain.DragEndedEvent
type ColorChangedEvent = domain.ColorChangedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run on the publishing goroutine, in subscription order, so a
// publisher observes every handler's effect before Publish returns.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all current subscribers
func (b *bus) Publish(event DomainEvent) {
	// Slide changes fire on every paging step; keep them out of the log
	switch event.Type() {
	case EventSlideChanged:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Copy so handlers may subscribe, unsubscribe or publish re-entrantly
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function; calling it more than once is harmless
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// SubscriberCount reports how many handlers are registered for eventType
func SubscriberCount(eb EventBus, eventType EventType) int {
	b, ok := eb.(*bus)
	if !ok {
		return -1
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
