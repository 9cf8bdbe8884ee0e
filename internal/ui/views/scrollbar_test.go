package views

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/ui/logic"
)

func newTestScrollbar(trackWidth, items int) *ScrollbarView {
	v := NewScrollbarView(NewStyles())
	v.Place(5, 12)
	v.Layout(trackWidth, items)
	return v
}

func TestScrollbarGeometry(t *testing.T) {
	v := newTestScrollbar(100, 10)

	assert.Equal(t, 100.0, v.TrackWidth())
	assert.InDelta(t, 20.0, v.ThumbWidth(), 1e-9)

	start, width := v.ThumbCells(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, width)

	start, width = v.ThumbCells(80)
	assert.Equal(t, 80, start)
	assert.Equal(t, 20, width)

	// out of range positions are clamped into the track
	start, _ = v.ThumbCells(150)
	assert.Equal(t, 80, start)
}

func TestScrollbarThumbNeverVanishes(t *testing.T) {
	v := newTestScrollbar(10, 300)

	_, width := v.ThumbCells(0)
	assert.Equal(t, 1, width)

	maxPos := 100 - logic.ThumbWidthPercent(300)
	start, width := v.ThumbCells(maxPos)
	assert.LessOrEqual(t, start+width, 10)
}

func TestScrollbarInactive(t *testing.T) {
	for _, v := range []*ScrollbarView{newTestScrollbar(40, 0), newTestScrollbar(0, 10)} {
		assert.False(t, v.Active())
		assert.Empty(t, v.Render(0, false))
		assert.Equal(t, HitOutside, v.HitTest(0, 0))
	}
}

func TestScrollbarHitTest(t *testing.T) {
	v := newTestScrollbar(40, 10)

	assert.Equal(t, HitThumb, v.HitTest(0, 0))
	assert.Equal(t, HitThumb, v.HitTest(7, 0))
	assert.Equal(t, HitTrack, v.HitTest(8, 0))
	assert.Equal(t, HitTrack, v.HitTest(39, 0))
	assert.Equal(t, HitOutside, v.HitTest(40, 0))
	assert.Equal(t, HitOutside, v.HitTest(-1, 0))
}

func TestScrollbarScreenMapping(t *testing.T) {
	v := newTestScrollbar(40, 10)

	assert.True(t, v.Contains(5, 12))
	assert.True(t, v.Contains(44, 12))
	assert.False(t, v.Contains(45, 12))
	assert.False(t, v.Contains(4, 12))
	assert.False(t, v.Contains(10, 11))
	assert.Equal(t, 0, v.LocalX(5))
	assert.Equal(t, -3, v.LocalX(2))
}

func TestScrollbarRender(t *testing.T) {
	v := newTestScrollbar(10, 10)

	out := ansi.Strip(v.Render(80, false))
	require.Equal(t, 10, ansi.StringWidth(out))
	assert.Equal(t, "────────━━", out)

	assert.Equal(t, "━━────────", ansi.Strip(v.Render(0, true)))
}
