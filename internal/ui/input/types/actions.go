package types

import "showcase/internal/domain"

// Paging actions
type PageAction struct {
	Delta int // -1 previous, +1 next
}

func (a PageAction) Type() string { return "page" }

type GoToSlideAction struct {
	Index int // -1 for the last slide
}

func (a GoToSlideAction) Type() string { return "go_to_slide" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Colour variant actions
type SetColorAction struct {
	Color domain.ColorKey
}

func (a SetColorAction) Type() string { return "set_color" }

type CycleColorAction struct{}

func (a CycleColorAction) Type() string { return "cycle_color" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type OpenImageAction struct{}

func (a OpenImageAction) Type() string { return "open_image" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
