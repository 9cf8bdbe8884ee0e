package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadRequested EventType = "LoadRequested"
	EventLoadStarted   EventType = "LoadStarted"
	EventItemsLoaded   EventType = "ItemsLoaded"
	EventLoadFailed    EventType = "LoadFailed"
	EventSlideChanged  EventType = "SlideChanged"
	EventDragStarted   EventType = "DragStarted"
	EventDragEnded     EventType = "DragEnded"
	EventColorChanged  EventType = "ColorChanged"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventError         EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadRequestedEvent asks the catalog loader to (re)fetch the product list
type LoadRequestedEvent struct{}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when a fetch begins
type LoadStartedEvent struct {
	Source string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// ItemsLoadedEvent carries a freshly fetched product list
type ItemsLoadedEvent struct {
	Source    string
	Products  []Product
	Stale     bool // served from cache after a failed fetch
	FetchedAt time.Time
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// LoadFailedEvent is emitted when no product list could be produced
type LoadFailedEvent struct {
	Source string
	Err    error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// SlideChangedEvent fires once per settled paging transition
type SlideChangedEvent struct {
	Index int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// DragStartedEvent is emitted when a scrollbar drag session opens
type DragStartedEvent struct {
	StartX   int
	Position float64
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragEndedEvent is emitted when a drag session closes, on any exit path
type DragEndedEvent struct {
	Position  float64
	Cancelled bool
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// ColorChangedEvent is emitted when the active colour variant changes
type ColorChangedEvent struct {
	Color ColorKey
}

func (e ColorChangedEvent) Type() EventType { return EventColorChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
