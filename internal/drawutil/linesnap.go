package drawutil

import (
	"github.com/rjkroege/edframe/draw"
)

// InertiaCarryoverMsec is the longest gap between the end of a motion
// and the start of inertia for the two to count as one gesture.
const InertiaCarryoverMsec = 50

// LineSnap turns wheel and trackpad samples into whole lines to scroll.
// Trackpad pixels that do not add up to a line are held until the
// gesture continues or stops.
type LineSnap struct {
	inmotion bool
	inertial bool

	// Halts cancel the rest of a gesture in one direction.
	haltup, haltdown bool

	pendingdist    int    // pixels not yet scrolled
	motionstopmsec uint32 // when the last gesture stopped
}

// Lines returns the number of lines to scroll for m, negative for
// upwards. Samples that are not scroll gestures give 0.
func (s *LineSnap) Lines(m draw.Mouse, lineheight int) int {
	switch m.Buttons & draw.ScrollMask {
	case draw.ScrollMotionStart:
		s.inmotion = true
		s.inertial = false
		s.pendingdist = 0
		s.haltup = false
		s.haltdown = false
		return 0

	case draw.ScrollInertiaStart:
		s.inmotion = true
		s.inertial = true
		s.pendingdist = 0
		if m.Msec-s.motionstopmsec >= InertiaCarryoverMsec {
			s.haltup = false
			s.haltdown = false
		}
		return 0

	case draw.ScrollMotionStop, draw.ScrollInertiaStop:
		s.inmotion = false
		s.inertial = false
		s.pendingdist = 0
		s.motionstopmsec = m.Msec
		return 0

	case draw.PixelScroll:
		if lineheight <= 0 {
			return 0
		}
		var delta int
		if s.inmotion {
			if (s.haltup && m.Scroll < 0) || (s.haltdown && m.Scroll > 0) {
				s.pendingdist = 0
				return 0
			}
			if sign(s.pendingdist)*sign(m.Scroll) < 0 {
				s.pendingdist = 0
			}
			delta = m.Scroll + s.pendingdist
			s.pendingdist = delta % lineheight
		} else {
			delta = m.Scroll
			s.pendingdist = 0
			s.motionstopmsec = 0
		}
		return delta / lineheight

	case draw.LineScroll:
		return m.Scroll
	}
	return 0
}

// Refocus is called when the pointer moves to another text during a
// gesture. The pending distance is dropped and inertia that carried
// the pointer there is stopped.
func (s *LineSnap) Refocus() {
	if !s.inmotion {
		return
	}
	s.pendingdist = 0
	s.haltup = s.inertial
	s.haltdown = s.inertial
}

// InMotion reports whether a trackpad gesture is underway.
func (s *LineSnap) InMotion() bool { return s.inmotion }

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
