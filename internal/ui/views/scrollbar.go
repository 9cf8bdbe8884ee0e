package views

import (
	"math"
	"strings"

	"showcase/internal/ui/logic"
)

// Hit classifies a column of the scrollbar row
type Hit int

const (
	HitOutside Hit = iota
	HitTrack
	HitThumb
)

// ScrollbarView draws the thumb track under the card strip and maps screen
// coordinates into it. Geometry is recomputed on every Layout call.
type ScrollbarView struct {
	styles *Styles

	left       int
	row        int
	trackWidth int
	itemCount  int
}

// NewScrollbarView creates a scrollbar view
func NewScrollbarView(styles *Styles) *ScrollbarView {
	return &ScrollbarView{styles: styles}
}

// Place sets the screen column and row of the track's first cell
func (v *ScrollbarView) Place(left, row int) {
	v.left = left
	v.row = row
}

// Layout sets the track width in cells and the item count
func (v *ScrollbarView) Layout(trackWidth, itemCount int) {
	v.trackWidth = max(trackWidth, 0)
	v.itemCount = max(itemCount, 0)
}

// Active reports whether there is anything to draw or drag
func (v *ScrollbarView) Active() bool {
	return v.trackWidth > 0 && logic.Active(v.itemCount)
}

// TrackWidth returns the track width in cells
func (v *ScrollbarView) TrackWidth() float64 {
	return float64(v.trackWidth)
}

// ThumbWidth returns the exact thumb width in cells, before rounding for display
func (v *ScrollbarView) ThumbWidth() float64 {
	return float64(v.trackWidth) * logic.ThumbWidthPercent(v.itemCount) / 100
}

// ThumbCells returns the first column and the width of the drawn thumb
func (v *ScrollbarView) ThumbCells(position float64) (start, width int) {
	if !v.Active() {
		return 0, 0
	}

	width = int(math.Round(v.ThumbWidth()))
	width = min(max(width, 1), v.trackWidth)

	position = logic.ClampPosition(position, v.itemCount)
	start = int(math.Round(position / 100 * float64(v.trackWidth)))
	start = min(max(start, 0), v.trackWidth-width)
	return start, width
}

// Contains reports whether the screen cell lies on the track
func (v *ScrollbarView) Contains(x, y int) bool {
	return y == v.row && x >= v.left && x < v.left+v.trackWidth
}

// LocalX converts a screen column to a track column. The result may fall
// outside the track.
func (v *ScrollbarView) LocalX(x int) int {
	return x - v.left
}

// HitTest classifies a track column given the thumb position
func (v *ScrollbarView) HitTest(localX int, position float64) Hit {
	if !v.Active() || localX < 0 || localX >= v.trackWidth {
		return HitOutside
	}
	start, width := v.ThumbCells(position)
	if localX >= start && localX < start+width {
		return HitThumb
	}
	return HitTrack
}

// Render draws the track with the thumb at position
func (v *ScrollbarView) Render(position float64, dragging bool) string {
	if !v.Active() {
		return ""
	}

	start, width := v.ThumbCells(position)
	thumbStyle := v.styles.Thumb
	if dragging {
		thumbStyle = v.styles.ThumbDragging
	}

	var b strings.Builder
	b.WriteString(v.styles.Track.Render(strings.Repeat("─", start)))
	b.WriteString(thumbStyle.Render(strings.Repeat("━", width)))
	b.WriteString(v.styles.Track.Render(strings.Repeat("─", v.trackWidth-start-width)))
	return b.String()
}
