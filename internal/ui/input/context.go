package input

import (
	"showcase/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State        *state.AppState
	CurrentSlide int
}

// CurrentIndex returns the slide the carousel is on or heading to
func (c *ModelContext) CurrentIndex() int {
	return c.CurrentSlide
}

// TotalItems returns the number of products on the strip
func (c *ModelContext) TotalItems() int {
	return len(c.State.Visible)
}

// Loading reports whether a fetch is in flight
func (c *ModelContext) Loading() bool {
	return c.State.Loading
}

// FilterQuery returns the applied filter
func (c *ModelContext) FilterQuery() string {
	return c.State.FilterQuery
}
