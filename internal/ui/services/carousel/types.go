package carousel

import "time"

// Adapter is the paging engine contract the scrollbar relies on
type Adapter interface {
	// GoToSlide requests a transition. Repeating the current or pending
	// index is a no-op.
	GoToSlide(index int)
	// Current returns the last settled slide index
	Current() int
	// OnSlideChange subscribes to settled transitions, whatever started them
	OnSlideChange(fn func(index int)) (unsubscribe func())
}

// FrameInterval is the cadence at which transitions are advanced
const FrameInterval = 16 * time.Millisecond

// MaxSlidesToShow caps how many cards the strip lays out at once
const MaxSlidesToShow = 4
