package drag

// Phase is the controller's state machine position
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// ClickThreshold is how far, in cells, the pointer may wander between
// press and release on the track and still count as a click
const ClickThreshold = 1

// Session is the state of one open drag. It owns the release handle of the
// global pointer listeners acquired when it was opened.
type Session struct {
	PointerStartX   int
	PositionAtStart float64
	release         func()
}

// close releases the session's listeners exactly once
func (s *Session) close() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}

// pendingClick records a press on the track that may become a seek
type pendingClick struct {
	x int
}

// Seeker is the paging side of the core: anything that can be asked to show a slide
type Seeker interface {
	GoToSlide(index int)
}

// Track supplies the current scrollbar geometry in cells, read on demand
type Track interface {
	TrackWidth() float64
	ThumbWidth() float64
}

// PointerListener receives pointer events regardless of where they land
type PointerListener interface {
	PointerMove(x int)
	PointerUp(x int)
}

// ListenerHost grants global pointer listeners. The returned func
// deregisters the listener and must be safe to call more than once.
type ListenerHost interface {
	Acquire(l PointerListener) (release func())
}
