package drag

import (
	"log"

	"showcase/internal/eventbus"
	"showcase/internal/ui/logic"
)

// Service is the scrollbar drag controller. It owns the thumb position while
// a drag session is open and turns pointer input into slide requests.
type Service struct {
	bus    eventbus.EventBus
	seeker Seeker
	host   ListenerHost
	track  Track

	itemCount int
	position  float64
	session   *Session
	click     *pendingClick

	onPosition func(float64)
}

// NewService creates a drag controller
func NewService(bus eventbus.EventBus, seeker Seeker, host ListenerHost, track Track) *Service {
	return &Service{
		bus:    bus,
		seeker: seeker,
		host:   host,
		track:  track,
	}
}

// OnPosition registers a callback invoked with every position the controller emits
func (s *Service) OnPosition(fn func(float64)) {
	s.onPosition = fn
}

// Phase returns the current state machine phase
func (s *Service) Phase() Phase {
	if s.session != nil {
		return PhaseDragging
	}
	return PhaseIdle
}

// Dragging reports whether a drag session is open
func (s *Service) Dragging() bool {
	return s.session != nil
}

// ClickPending reports whether a track press is waiting for its release
func (s *Service) ClickPending() bool {
	return s.click != nil
}

// Position returns the current thumb position in percent
func (s *Service) Position() float64 {
	return s.position
}

// ItemCount returns the item count the controller maps against
func (s *Service) ItemCount() int {
	return s.itemCount
}

// SetItemCount updates the number of pageable items. A change while a
// drag is open ends the session without issuing further seeks.
func (s *Service) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	if n == s.itemCount {
		return
	}
	s.Teardown()
	s.itemCount = n
	s.emit(logic.ClampPosition(s.position, n))
}

// SyncToIndex moves the thumb to the position of a settled slide. While a
// drag session is open the controller owns the position and the call is
// ignored; it returns whether the position was applied.
func (s *Service) SyncToIndex(index int) bool {
	if s.session != nil {
		return false
	}
	s.emit(logic.IndexToPosition(index, s.itemCount))
	return true
}

// PointerDown opens a drag session from a press on the thumb
func (s *Service) PointerDown(x int, currentPosition float64) {
	if !logic.Active(s.itemCount) || s.session != nil {
		return
	}
	s.click = nil

	start := logic.ClampPosition(currentPosition, s.itemCount)
	session := &Session{
		PointerStartX:   x,
		PositionAtStart: start,
	}
	s.session = session
	session.release = s.host.Acquire(s)

	s.bus.Publish(eventbus.DragStartedEvent{StartX: x, Position: start})
}

// TrackDown records a press on the track outside the thumb. It becomes a
// seek if released without moving further than ClickThreshold.
func (s *Service) TrackDown(x int) {
	if !logic.Active(s.itemCount) || s.session != nil {
		return
	}
	if s.track == nil || s.track.TrackWidth() <= 0 {
		return
	}
	s.click = &pendingClick{x: x}
}

// PointerMove handles pointer motion for the open session or pending click
func (s *Service) PointerMove(x int) {
	if s.click != nil {
		if abs(x-s.click.x) > ClickThreshold {
			s.click = nil
		}
		return
	}
	if s.session == nil {
		return
	}

	trackWidth, thumbWidth := s.geometry()
	travel := trackWidth - thumbWidth
	if travel <= 0 {
		return
	}

	dx := float64(x - s.session.PointerStartX)
	dragPercent := dx / travel * 100
	newPosition := logic.ClampPosition(s.session.PositionAtStart+dragPercent, s.itemCount)
	s.emit(newPosition)

	s.seek(logic.PositionToIndex(newPosition, s.itemCount))
}

// PointerUp ends the drag session or completes a pending click-to-seek
func (s *Service) PointerUp(x int) {
	if s.click != nil {
		click := s.click
		s.click = nil
		if abs(x-click.x) > ClickThreshold {
			return
		}
		s.seekClick(click.x)
		return
	}
	s.end(false)
}

// PointerCancel ends the drag session without a final seek
func (s *Service) PointerCancel() {
	s.click = nil
	s.end(true)
}

// Teardown discards any open session and releases its listeners. No seek
// is issued after Teardown returns.
func (s *Service) Teardown() {
	s.click = nil
	s.end(true)
}

func (s *Service) end(cancelled bool) {
	if s.session == nil {
		return
	}
	session := s.session
	s.session = nil
	session.close()

	s.bus.Publish(eventbus.DragEndedEvent{Position: s.position, Cancelled: cancelled})
}

func (s *Service) seekClick(x int) {
	trackWidth, _ := s.geometry()
	if trackWidth <= 0 || !logic.Active(s.itemCount) {
		return
	}
	ratio := float64(x) / trackWidth
	clickPercent := logic.ClickToPosition(ratio, s.itemCount)
	s.seek(logic.PositionToIndex(clickPercent, s.itemCount))
}

func (s *Service) seek(index int) {
	if s.seeker == nil {
		log.Printf("drag: no seeker for index %d", index)
		return
	}
	s.seeker.GoToSlide(logic.ClampIndex(index, s.itemCount))
}

func (s *Service) geometry() (float64, float64) {
	if s.track == nil {
		return 0, 0
	}
	return s.track.TrackWidth(), s.track.ThumbWidth()
}

func (s *Service) emit(position float64) {
	s.position = position
	if s.onPosition != nil {
		s.onPosition(position)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
