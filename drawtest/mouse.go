package drawtest

import (
	"image"
	"time"

	"github.com/rjkroege/edframe/draw"
)

// Clock is a fake millisecond clock.
type Clock struct {
	ms uint32
}

// NewClock returns a clock reading ms.
func NewClock(ms uint32) *Clock { return &Clock{ms: ms} }

func (c *Clock) Now() uint32 { return c.ms }

func (c *Clock) Advance(d time.Duration) {
	c.ms += uint32(d / time.Millisecond)
}

func (c *Clock) set(ms uint32) {
	if ms > c.ms {
		c.ms = ms
	}
}

// maxidle bounds the timeouts accepted after the script runs dry so
// that a gesture missing its button release fails instead of spinning.
const maxidle = 100000

var _ = draw.Mousectl((*Mousectl)(nil))

// Mousectl replays a script of samples against a Clock. A sample is
// delivered once the clock reaches its Msec.
type Mousectl struct {
	clock  *Clock
	cur    draw.Mouse
	script []draw.Mouse
	idle   int

	// Moves records MoveTo requests.
	Moves []image.Point
}

// NewMousectl returns a scripted Mousectl whose current sample is
// first. The clock is advanced to first.Msec.
func NewMousectl(clock *Clock, first draw.Mouse, script ...draw.Mouse) *Mousectl {
	clock.set(first.Msec)
	return &Mousectl{
		clock:  clock,
		cur:    first,
		script: script,
	}
}

func (mc *Mousectl) Current() draw.Mouse { return mc.cur }

// Pending returns the number of samples not yet delivered.
func (mc *Mousectl) Pending() int { return len(mc.script) }

func (mc *Mousectl) pop() {
	mc.cur = mc.script[0]
	mc.script = mc.script[1:]
	mc.clock.set(mc.cur.Msec)
	mc.idle = 0
}

func (mc *Mousectl) Read() draw.Mouse {
	if len(mc.script) == 0 {
		panic("drawtest: mouse script exhausted")
	}
	mc.pop()
	return mc.cur
}

func (mc *Mousectl) Wait(d time.Duration) bool {
	deadline := mc.clock.Now() + uint32(d/time.Millisecond)
	if len(mc.script) > 0 && mc.script[0].Msec <= deadline {
		mc.pop()
		return true
	}
	mc.clock.Advance(d)
	if len(mc.script) == 0 {
		mc.idle++
		if mc.idle > maxidle {
			panic("drawtest: mouse script exhausted while waiting")
		}
	}
	return false
}

func (mc *Mousectl) MoveTo(pt image.Point) error {
	mc.Moves = append(mc.Moves, pt)
	mc.cur.Point = pt
	return nil
}
