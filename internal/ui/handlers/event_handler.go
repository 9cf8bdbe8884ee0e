package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"showcase/internal/eventbus"
	"showcase/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state          *state.AppState
	onItemsChanged func()
	startLoading   func() tea.Cmd
}

// NewEventHandler creates a new event handler. onItemsChanged runs after
// the visible product list was replaced; startLoading returns the command
// that animates the loading indicator.
func NewEventHandler(appState *state.AppState, onItemsChanged func(), startLoading func() tea.Cmd) *EventHandler {
	return &EventHandler{
		state:          appState,
		onItemsChanged: onItemsChanged,
		startLoading:   startLoading,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		h.state.Loading = true
		h.state.Source = e.Source
		h.state.SetStatus(state.StatusInfo, fmt.Sprintf("Loading products from %s...", e.Source))
		if h.startLoading != nil {
			return h.startLoading()
		}

	case eventbus.ItemsLoadedEvent:
		h.state.Loading = false
		h.state.Stale = e.Stale
		h.state.FetchedAt = e.FetchedAt
		h.state.SetProducts(e.Products)
		if e.Stale {
			h.state.SetStatus(state.StatusWarning,
				fmt.Sprintf("Loaded %d products cached %s", len(e.Products), e.FetchedAt.Format(time.DateTime)))
		} else {
			h.state.SetStatus(state.StatusSuccess, fmt.Sprintf("Loaded %d products", len(e.Products)))
		}
		if h.onItemsChanged != nil {
			h.onItemsChanged()
		}

	case eventbus.LoadFailedEvent:
		h.state.Loading = false
		h.state.SetStatus(state.StatusError, fmt.Sprintf("Error: %v", e.Err))

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(state.StatusSuccess, fmt.Sprintf("Saved config to %s", e.Path))

	case eventbus.ErrorEvent:
		h.state.SetStatus(state.StatusError, fmt.Sprintf("Error: %s", e.Message))
	}

	return nil
}
