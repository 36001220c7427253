package draw

import (
	"image"
	"time"
)

// Mouse button bits and scroll gesture tags. Tags share the Buttons word
// with the button bits so a single sample carries both.
const (
	Button1 = 1 << iota
	Button2
	Button3

	LineScroll         // a discrete wheel tick; Scroll holds lines
	PixelScroll        // trackpad motion; Scroll holds pixels
	ScrollMotionStart  // fingers down on the trackpad
	ScrollMotionStop   // fingers up
	ScrollInertiaStart // momentum begins
	ScrollInertiaStop  // momentum ends

	ButtonMask = Button1 | Button2 | Button3
	ScrollMask = LineScroll | PixelScroll | ScrollMotionStart | ScrollMotionStop | ScrollInertiaStart | ScrollInertiaStop
)

// Raw wheel buttons reported by the display server.
const (
	wheelUp   = 8
	wheelDown = 16
)

// Mouse is one pointer sample. Msec is a monotonic millisecond clock.
type Mouse struct {
	image.Point
	Buttons int
	Scroll  int
	Msec    uint32
}

// Mousectl is a source of pointer samples.
type Mousectl interface {
	// Current returns the most recent sample.
	Current() Mouse

	// Read blocks until the next sample arrives.
	Read() Mouse

	// Wait waits at most d for the next sample. It reports whether a
	// sample arrived; Current is updated only if one did.
	Wait(d time.Duration) bool

	MoveTo(pt image.Point) error
}

type mover interface {
	MoveTo(pt image.Point) error
}

// MouseEvents is the Mousectl of a real display. An event loop
// receives from C into Mouse, as with a 9fans Mousectl.
type MouseEvents struct {
	Mouse
	C      <-chan Mouse
	Resize <-chan bool

	display mover
}

var _ = Mousectl((*MouseEvents)(nil))

func newMouseEvents(src <-chan drawMouse, resize <-chan bool, d mover) *MouseEvents {
	c := make(chan Mouse)
	go func() {
		for m := range src {
			c <- translateMouse(m)
		}
		close(c)
	}()
	return &MouseEvents{
		C:       c,
		Resize:  resize,
		display: d,
	}
}

// translateMouse turns raw wheel buttons into line scroll samples.
func translateMouse(m drawMouse) Mouse {
	tm := Mouse{Point: m.Point, Buttons: m.Buttons, Msec: m.Msec}
	switch {
	case m.Buttons&wheelUp != 0:
		tm.Buttons = m.Buttons&ButtonMask | LineScroll
		tm.Scroll = -1
	case m.Buttons&wheelDown != 0:
		tm.Buttons = m.Buttons&ButtonMask | LineScroll
		tm.Scroll = 1
	}
	return tm
}

func (mc *MouseEvents) Current() Mouse { return mc.Mouse }

func (mc *MouseEvents) Read() Mouse {
	mc.Mouse = <-mc.C
	return mc.Mouse
}

func (mc *MouseEvents) Wait(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case mc.Mouse = <-mc.C:
		return true
	case <-t.C:
		return false
	}
}

func (mc *MouseEvents) MoveTo(pt image.Point) error {
	mc.Point = pt
	return mc.display.MoveTo(pt)
}
