package carousel

import (
	"math"
	"time"

	"showcase/internal/eventbus"
)

// Engine is the paging engine behind the card strip. Transitions are
// animated over a fixed duration and advanced by Step; every settled
// transition is published once as a SlideChangedEvent.
type Engine struct {
	bus      eventbus.EventBus
	duration time.Duration
	now      func() time.Time

	itemCount    int
	slidesToShow int

	current   int
	target    int
	from      float64
	offset    float64
	startedAt time.Time
	animating bool
}

var _ Adapter = (*Engine)(nil)

// NewEngine creates a paging engine. A zero duration settles every
// transition immediately.
func NewEngine(bus eventbus.EventBus, duration time.Duration) *Engine {
	if duration < 0 {
		duration = 0
	}
	return &Engine{
		bus:          bus,
		duration:     duration,
		now:          time.Now,
		slidesToShow: 1,
	}
}

// SetClock replaces the time source, for tests
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// OnSlideChange subscribes fn to settled slide changes
func (e *Engine) OnSlideChange(fn func(index int)) func() {
	return e.bus.Subscribe(eventbus.EventSlideChanged, func(ev eventbus.DomainEvent) {
		if changed, ok := ev.(eventbus.SlideChangedEvent); ok {
			fn(changed.Index)
		}
	})
}

// Current returns the last settled slide index
func (e *Engine) Current() int {
	return e.current
}

// Target returns where the engine is heading, or the current slide when settled
func (e *Engine) Target() int {
	if e.animating {
		return e.target
	}
	return e.current
}

// Animating reports whether a transition is in flight
func (e *Engine) Animating() bool {
	return e.animating
}

// Offset returns the fractional leading slide currently on screen
func (e *Engine) Offset() float64 {
	return e.offset
}

// VisibleIndex returns the leading card to draw for the current frame
func (e *Engine) VisibleIndex() int {
	return int(math.Round(e.offset))
}

// SlidesToShow returns how many cards the strip shows
func (e *Engine) SlidesToShow() int {
	return e.slidesToShow
}

// ItemCount returns the number of slides
func (e *Engine) ItemCount() int {
	return e.itemCount
}

// MaxIndex returns the last index the engine will settle on
func (e *Engine) MaxIndex() int {
	if m := e.itemCount - e.slidesToShow; m > 0 {
		return m
	}
	return 0
}

// Reset replaces the slide set and jumps to the first slide
func (e *Engine) Reset(itemCount, slidesToShow int) {
	e.itemCount = max(itemCount, 0)
	e.slidesToShow = clampShow(slidesToShow, e.itemCount)
	e.animating = false
	e.current, e.target = 0, 0
	e.offset, e.from = 0, 0
	e.publish()
}

// SetSlidesToShow changes the layout width. The current slide is pulled
// back into range if the new layout cannot reach it.
func (e *Engine) SetSlidesToShow(n int) {
	n = clampShow(n, e.itemCount)
	if n == e.slidesToShow {
		return
	}
	e.slidesToShow = n
	if e.Target() > e.MaxIndex() {
		e.settle(e.MaxIndex())
	}
}

// GoToSlide requests a transition to index, clamped into range
func (e *Engine) GoToSlide(index int) {
	index = e.clamp(index)

	if e.animating {
		if index == e.target {
			return
		}
		e.from = e.offset
		e.target = index
		e.startedAt = e.now()
		return
	}

	if index == e.current {
		return
	}
	if e.duration == 0 {
		e.settle(index)
		return
	}

	e.from = e.offset
	e.target = index
	e.startedAt = e.now()
	e.animating = true
}

// Next pages forward by one slide
func (e *Engine) Next() {
	e.GoToSlide(e.Target() + 1)
}

// Prev pages back by one slide
func (e *Engine) Prev() {
	e.GoToSlide(e.Target() - 1)
}

// Step advances the running transition to the given time and reports
// whether it is still in flight
func (e *Engine) Step(now time.Time) bool {
	if !e.animating {
		return false
	}

	progress := float64(now.Sub(e.startedAt)) / float64(e.duration)
	if progress >= 1 {
		e.settle(e.target)
		return false
	}
	if progress < 0 {
		progress = 0
	}

	eased := 1 - math.Pow(1-progress, 3)
	e.offset = e.from + (float64(e.target)-e.from)*eased
	return true
}

func (e *Engine) settle(index int) {
	e.animating = false
	e.current = index
	e.target = index
	e.offset = float64(index)
	e.from = e.offset
	e.publish()
}

func (e *Engine) publish() {
	e.bus.Publish(eventbus.SlideChangedEvent{Index: e.current})
}

func (e *Engine) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if m := e.MaxIndex(); index > m {
		return m
	}
	return index
}

func clampShow(n, itemCount int) int {
	if n > MaxSlidesToShow {
		n = MaxSlidesToShow
	}
	if n > itemCount {
		n = itemCount
	}
	if n < 1 {
		n = 1
	}
	return n
}
