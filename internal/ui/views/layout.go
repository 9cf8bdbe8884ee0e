package views

import "showcase/internal/ui/services/carousel"

const (
	// ArrowWidth is the width of the prev/next arrow columns
	ArrowWidth = 3
	cardGap    = 1

	// padding of Styles.Main
	mainTop  = 1
	mainLeft = 2
	// title line plus its bottom margin
	titleRows = 2
)

// Arrow identifies a paging arrow
type Arrow int

const (
	NoArrow Arrow = iota
	PrevArrow
	NextArrow
)

// Layout is the screen geometry of one frame. It is recomputed from the
// window size and item count on every resize or reload.
type Layout struct {
	Width        int
	Height       int
	CardWidth    int
	SlidesToShow int

	CardsLeft    int
	CardsTop     int
	StripWidth   int
	ScrollbarRow int
}

// SlidesFor returns how many cards of cardWidth fit in a window width
func SlidesFor(width, cardWidth int) int {
	if cardWidth <= 0 {
		return 1
	}
	avail := width - 2*mainLeft - 2*ArrowWidth + cardGap
	n := avail / (cardWidth + cardGap)
	return min(max(n, 1), carousel.MaxSlidesToShow)
}

// ComputeLayout lays out a strip of slidesToShow cards
func ComputeLayout(width, height, cardWidth, slidesToShow int) Layout {
	slidesToShow = max(slidesToShow, 1)
	l := Layout{
		Width:        width,
		Height:       height,
		CardWidth:    cardWidth,
		SlidesToShow: slidesToShow,
		CardsLeft:    mainLeft + ArrowWidth,
		CardsTop:     mainTop + titleRows,
		StripWidth:   slidesToShow*cardWidth + (slidesToShow-1)*cardGap,
	}
	// one blank row between the strip and the scrollbar
	l.ScrollbarRow = l.CardsTop + CardHeight + 1
	return l
}

// ArrowAt reports which arrow, if any, covers the screen cell
func (l Layout) ArrowAt(x, y int) Arrow {
	if y < l.CardsTop || y >= l.CardsTop+CardHeight {
		return NoArrow
	}
	switch {
	case x >= l.CardsLeft-ArrowWidth && x < l.CardsLeft:
		return PrevArrow
	case x >= l.CardsLeft+l.StripWidth && x < l.CardsLeft+l.StripWidth+ArrowWidth:
		return NextArrow
	}
	return NoArrow
}

// CardAt maps a screen cell to a card slot of the strip and the cell's
// position inside that card
func (l Layout) CardAt(x, y int) (slot, col, row int, ok bool) {
	if y < l.CardsTop || y >= l.CardsTop+CardHeight {
		return 0, 0, 0, false
	}
	dx := x - l.CardsLeft
	if dx < 0 || dx >= l.StripWidth {
		return 0, 0, 0, false
	}
	slot = dx / (l.CardWidth + cardGap)
	col = dx % (l.CardWidth + cardGap)
	if col >= l.CardWidth {
		// gap between cards
		return 0, 0, 0, false
	}
	return slot, col, y - l.CardsTop, true
}
