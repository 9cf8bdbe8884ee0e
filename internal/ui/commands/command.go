package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"showcase/internal/eventbus"
	"showcase/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Opener opens a URL with the desktop's default handler
type Opener func(url string) error

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Bus    eventbus.EventBus
	Opener Opener
}

// ImageOpenedMsg reports the outcome of an OpenImageCommand
type ImageOpenedMsg struct {
	URL string
	Err error
}

// ReloadCommand asks the catalog loader to fetch the product list again
type ReloadCommand struct {
	ctx *CommandContext
}

// NewReloadCommand creates a new reload command
func NewReloadCommand(ctx *CommandContext) *ReloadCommand {
	return &ReloadCommand{ctx: ctx}
}

// Execute performs the reload request
func (c *ReloadCommand) Execute() tea.Cmd {
	if c.ctx.State.Loading {
		c.ctx.State.SetStatus(state.StatusInfo, "Already loading...")
		return nil
	}
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.LoadRequestedEvent{})
	}
	return nil
}

// OpenImageCommand opens the image of the focused product in the active colour
type OpenImageCommand struct {
	ctx   *CommandContext
	index int
}

// NewOpenImageCommand creates a new open image command for the product at index
func NewOpenImageCommand(ctx *CommandContext, index int) *OpenImageCommand {
	return &OpenImageCommand{ctx: ctx, index: index}
}

// Execute resolves the image URL and opens it in the background
func (c *OpenImageCommand) Execute() tea.Cmd {
	product, ok := c.ctx.State.ProductAt(c.index)
	if !ok {
		return nil
	}
	url := product.ImageFor(c.ctx.State.Color)
	if url == "" {
		c.ctx.State.SetStatus(state.StatusWarning, fmt.Sprintf("%s has no image", product.Name))
		return nil
	}
	if c.ctx.Opener == nil {
		return nil
	}

	opener := c.ctx.Opener
	c.ctx.State.SetStatus(state.StatusInfo, fmt.Sprintf("Opening %s...", url))
	return func() tea.Msg {
		return ImageOpenedMsg{URL: url, Err: opener(url)}
	}
}
