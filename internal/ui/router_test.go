package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingListener struct {
	moves []int
	ups   []int
}

func (l *recordingListener) PointerMove(x int) { l.moves = append(l.moves, x) }
func (l *recordingListener) PointerUp(x int)   { l.ups = append(l.ups, x) }

func TestRouterDispatchesUntilReleased(t *testing.T) {
	r := &pointerRouter{}
	l := &recordingListener{}

	release := r.Acquire(l)
	assert.Equal(t, 1, r.Active())

	assert.True(t, r.Move(3))
	assert.True(t, r.Up(4))
	assert.Equal(t, []int{3}, l.moves)
	assert.Equal(t, []int{4}, l.ups)

	release()
	release()
	assert.Equal(t, 0, r.Active())
	assert.False(t, r.Move(5))
	assert.Equal(t, []int{3}, l.moves)
}

type selfReleasingListener struct {
	release func()
	ups     int
}

func (l *selfReleasingListener) PointerMove(int) {}
func (l *selfReleasingListener) PointerUp(int) {
	l.ups++
	l.release()
}

func TestRouterToleratesReleaseDuringDispatch(t *testing.T) {
	r := &pointerRouter{}
	a := &selfReleasingListener{}
	b := &selfReleasingListener{}
	a.release = r.Acquire(a)
	b.release = r.Acquire(b)

	r.Up(0)

	assert.Equal(t, 1, a.ups)
	assert.Equal(t, 1, b.ups)
	assert.Equal(t, 0, r.Active())
}
