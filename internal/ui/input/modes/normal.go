package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"showcase/internal/domain"
	"showcase/internal/ui/input/types"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, m.keys.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case key.Matches(msg, m.keys.Color):
		return []types.Action{types.CycleColorAction{}}, true

	case key.Matches(msg, m.keys.Yellow):
		return []types.Action{types.SetColorAction{Color: domain.ColorYellow}}, true

	case key.Matches(msg, m.keys.White):
		return []types.Action{types.SetColorAction{Color: domain.ColorWhite}}, true

	case key.Matches(msg, m.keys.Rose):
		return []types.Action{types.SetColorAction{Color: domain.ColorRose}}, true
	}

	// Everything below needs products on screen
	if ctx.TotalItems() == 0 {
		if msg.Type == tea.KeyEsc && ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.PageAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.PageAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.First):
		return []types.Action{types.GoToSlideAction{Index: 0}}, true

	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.GoToSlideAction{Index: -1}}, true

	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.OpenImageAction{}}, true

	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.CycleSortAction{}}, true
	}

	if msg.Type == tea.KeyEsc && ctx.FilterQuery() != "" {
		return []types.Action{types.ClearFilterAction{}}, true
	}
	return nil, false
}
