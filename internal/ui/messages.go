package ui

import (
	"time"

	"showcase/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg advances a running slide transition
type frameMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg and resumeRenderingMsg bracket an external pager
type pauseRenderingMsg struct{}

type resumeRenderingMsg struct{}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}
