package dragscroll

import (
	"image"
)

// Zones finds the scroll zones of one selection drag. A zone lies above
// or below the frame. When the frame is too close to the edge of the
// area the pointer can reach, the zone extends into the frame so that at
// least MinLines of depth remain for controlling the speed. The part of
// a zone inside the frame only becomes active once the drag has left its
// start line in that direction.
type Zones struct {
	Frame      image.Rectangle // the frame being selected in
	Screen     image.Rectangle // where the pointer can go
	LineHeight int
	MinLines   int // minimum depth of a zone, in lines
	EaseMsec   int // time to reach full speed after entering a zone

	startline int // top of the line where the drag started

	armedup, armeddown bool
	cur                int    // sign of the zone the pointer is in
	enterms            uint32 // when it entered that zone
}

// NewZones returns the Zones of a drag that started at start.
func NewZones(frame, screen image.Rectangle, lineheight, minlines, easems int, start image.Point) *Zones {
	z := &Zones{
		Frame:      frame,
		Screen:     screen,
		LineHeight: lineheight,
		MinLines:   minlines,
		EaseMsec:   easems,
	}
	if lineheight > 0 {
		y := start.Y - frame.Min.Y
		y -= y % lineheight
		z.startline = frame.Min.Y + y
	}
	return z
}

// extent returns how far a zone reaches into the frame given the space
// outside the frame between it and the reachable edge.
func (z *Zones) extent(outside int) int {
	if outside < 0 {
		outside = 0
	}
	ext := z.MinLines*z.LineHeight - outside
	if ext > z.Frame.Dy()/2 {
		ext = z.Frame.Dy() / 2
	}
	if ext < 0 {
		ext = 0
	}
	return ext
}

// Top returns the inner edge of the zone above the frame.
func (z *Zones) Top() int {
	if !z.armedup {
		return z.Frame.Min.Y
	}
	return z.Frame.Min.Y + z.extent(z.Frame.Min.Y-z.Screen.Min.Y)
}

// Bottom returns the inner edge of the zone below the frame.
func (z *Zones) Bottom() int {
	if !z.armeddown {
		return z.Frame.Max.Y
	}
	return z.Frame.Max.Y - z.extent(z.Screen.Max.Y-z.Frame.Max.Y)
}

// Zone returns the raw velocity for the pointer at pt at time ms:
// negative in the zone above the frame, positive below, growing by one
// for each line of distance from the zone's inner edge, and 0 outside
// the zones.
func (z *Zones) Zone(pt image.Point, ms uint32) int {
	if z.LineHeight <= 0 {
		return 0
	}
	if pt.Y < z.startline {
		z.armedup = true
	}
	if pt.Y >= z.startline+z.LineHeight {
		z.armeddown = true
	}

	v := 0
	if top := z.Top(); pt.Y < top {
		v = -1 - (top-pt.Y)/z.LineHeight
	} else if bot := z.Bottom(); pt.Y > bot {
		v = 1 + (pt.Y-bot)/z.LineHeight
	}

	if s := sign(v); s != z.cur {
		z.cur = s
		z.enterms = ms
	}
	return v
}

// Ease scales v by the time spent in the current zone, rising from 0 on
// entry to v after EaseMsec. The result is truncated towards zero.
func (z *Zones) Ease(v int, ms uint32) int {
	if z.EaseMsec <= 0 || v == 0 {
		return v
	}
	elapsed := int(ms - z.enterms)
	if elapsed >= z.EaseMsec {
		return v
	}
	return v * elapsed / z.EaseMsec
}
