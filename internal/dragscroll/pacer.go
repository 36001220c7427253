// Package dragscroll paces scrolling driven by a held mouse button.
//
// The pointer sets a velocity in lines per PaceMsec. A Pacer turns the
// velocity into a number of lines to move now from the time elapsed
// since the view last moved, so the speed does not depend on how often
// mouse events arrive. While the pointer is still, the caller waits for
// the next event with a timeout and the Pacer treats the timeout as a
// repeat of the last event.
package dragscroll

import (
	"time"

	"github.com/rjkroege/edframe/draw"
)

const (
	// PaceMsec is the time in which a velocity of 1 moves one line.
	PaceMsec = 250

	// SleepMsec is the longest wait for a mouse event while scrolling.
	SleepMsec = 30

	// DebounceMsec is how long scrollbar scrubbing waits after the
	// initial click before it starts to repeat.
	DebounceMsec = 2 * PaceMsec
)

var epoch = time.Now()

// Monotonic returns milliseconds on a monotonic clock.
func Monotonic() uint32 {
	return uint32(time.Since(epoch) / time.Millisecond)
}

// Pacer tracks the timing of one drag. The zero value is ready to use
// after Reset.
type Pacer struct {
	// Now is the wall clock. Monotonic is used when it is nil.
	Now func() uint32

	mousewallms uint32 // wall time of the last Resume
	mousems     uint32 // mouse time of the last event, real or virtual
	lastmovems  uint32 // mouse time of the last move of the view
	pacediffms  int    // time owed to or by the next move
}

func (s *Pacer) now() uint32 {
	if s.Now != nil {
		return s.Now()
	}
	return Monotonic()
}

// Reset starts pacing from mouse event m. A negative pacediffms makes
// the first move come sooner.
func (s *Pacer) Reset(m draw.Mouse, pacediffms int) {
	s.mousewallms = s.now()
	s.lastmovems = m.Msec
	s.mousems = m.Msec
	s.pacediffms = pacediffms
}

// Resume accounts for the wait that has just ended. When newevent is
// true m is a new mouse event. Otherwise the wait timed out and m is
// treated as a repeat of the last event, its Msec advanced by the wall
// time that has passed.
func (s *Pacer) Resume(m *draw.Mouse, newevent bool) {
	now := s.now()
	if newevent {
		// Mouse time can wrap around, or fall a little behind the mouse
		// time advanced by virtual repeats.
		newms := m.Msec
		if newms < s.mousems {
			s.lastmovems = newms - (s.mousems - s.lastmovems) - (now - s.mousewallms)
		}
		s.mousems = newms
	} else {
		s.mousems += now - s.mousewallms
		m.Msec = s.mousems
	}
	s.mousewallms = now
}

// Poll waits at most maxwait for the next event from mc and resumes
// pacing. It returns the event, or the repeated last event.
func (s *Pacer) Poll(mc draw.Mousectl, maxwait time.Duration) draw.Mouse {
	newevent := mc.Wait(maxwait)
	m := mc.Current()
	s.Resume(&m, newevent)
	return m
}

// Delta returns the number of lines to move now at velocity, where a
// velocity of 1 moves a line every pacems. The remainder carries over to
// the next call.
func (s *Pacer) Delta(velocity, pacems int) int {
	dur := int(s.mousems-s.lastmovems) - s.pacediffms
	if dur < 0 {
		dur = 0
	}
	if velocity == 0 {
		s.pacediffms = 0
		s.lastmovems = s.mousems
		return 0
	}
	durmulvel := dur * velocity
	delta := divround(durmulvel, pacems)
	if delta != 0 {
		s.pacediffms = divround(delta*pacems-durmulvel, velocity)
		s.lastmovems = s.mousems
	}
	return delta
}

// WallMsec returns the wall time of the last Resume or Reset.
func (s *Pacer) WallMsec() uint32 {
	return s.mousewallms
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// divround divides x by d, rounding half away from zero.
func divround(x, d int) int {
	return (x + sign(x)*sign(d)*d/2) / d
}
