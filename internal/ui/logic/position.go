package logic

import "math"

// VisibleCount is the number of cards the scrollbar math assumes are on
// screen. Responsive layouts may show fewer; the thumb does not follow them.
const VisibleCount = 4

// MaxThumbPercent caps the thumb width as a share of the track
const MaxThumbPercent = 20.0

// Active reports whether the scrollbar can be used for itemCount items
func Active(itemCount int) bool {
	return itemCount > 0
}

// ThumbWidthPercent returns the thumb width as a percentage of the track.
// It is 0 when there is nothing to page through.
func ThumbWidthPercent(itemCount int) float64 {
	if !Active(itemCount) {
		return 0
	}
	return math.Min(100/float64(itemCount)*VisibleCount, MaxThumbPercent)
}

// MaxScrollIndex is the highest slide index reachable under the
// "show next card" paging model. Never below 1.
func MaxScrollIndex(itemCount int) int {
	if itemCount-VisibleCount > 1 {
		return itemCount - VisibleCount
	}
	return 1
}

// travelPercent is the span the thumb's left edge can move across
func travelPercent(itemCount int) float64 {
	return 100 - ThumbWidthPercent(itemCount)
}

// ClampIndex limits index to [0, MaxScrollIndex]
func ClampIndex(index, itemCount int) int {
	if index < 0 {
		return 0
	}
	if hi := MaxScrollIndex(itemCount); index > hi {
		return hi
	}
	return index
}

// ClampPosition limits position to [0, 100 - ThumbWidthPercent]
func ClampPosition(position float64, itemCount int) float64 {
	if !Active(itemCount) || math.IsNaN(position) || position < 0 {
		return 0
	}
	if limit := travelPercent(itemCount); position > limit {
		return limit
	}
	return position
}

// IndexToPosition maps a slide index onto the thumb's left edge, in percent
func IndexToPosition(index, itemCount int) float64 {
	if !Active(itemCount) {
		return 0
	}
	i := ClampIndex(index, itemCount)
	return float64(i) / float64(MaxScrollIndex(itemCount)) * travelPercent(itemCount)
}

// PositionToIndex maps a thumb position back to the nearest slide index.
// Halves round away from zero; the result is always within range.
func PositionToIndex(position float64, itemCount int) int {
	if !Active(itemCount) {
		return 0
	}
	travel := travelPercent(itemCount)
	if travel <= 0 || math.IsNaN(position) {
		return 0
	}
	return ClampIndex(int(math.Round(position/travel*float64(MaxScrollIndex(itemCount)))), itemCount)
}

// ClickToPosition converts a click at ratio (0..1 of the track width) to a
// thumb position. The click is scaled onto the travel span, not the full track.
func ClickToPosition(ratio float64, itemCount int) float64 {
	if !Active(itemCount) {
		return 0
	}
	return ClampPosition(ratio*travelPercent(itemCount), itemCount)
}
