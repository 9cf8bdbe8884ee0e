package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"showcase/internal/eventbus"
	"showcase/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor that opens images with the
// system handler
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return NewExecutorWithOpener(state, bus, open.Run)
}

// NewExecutorWithOpener creates a command executor with a custom opener
func NewExecutorWithOpener(state *state.AppState, bus eventbus.EventBus, opener Opener) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Bus:    bus,
			Opener: opener,
		},
	}
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCommand(e.ctx).Execute()
}

// ExecuteOpenImage creates and executes an open image command
func (e *Executor) ExecuteOpenImage(index int) tea.Cmd {
	return NewOpenImageCommand(e.ctx, index).Execute()
}
