package text

import (
	"image"
	"strings"
	"testing"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/drawtest"
	"github.com/rjkroege/edframe/file"
	"github.com/rjkroege/edframe/frame"
)

// Texts in tests are 20 characters wide and 5 lines high: the frame
// starts 16 pixels right of the text rectangle.
var (
	textRect = image.Rect(0, 0, 216, 65)
	frameX   = 16
)

type fixture struct {
	display draw.Display
	clock   *drawtest.Clock
	sess    *Session
	cols    [frame.NumColours]draw.Image
	font    draw.Font
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	d := drawtest.NewDisplay(image.Rect(0, 0, 800, 600))
	fx := &fixture{
		display: d,
		clock:   drawtest.NewClock(0),
		font:    drawtest.NewFont(drawtest.FontWidth, drawtest.FontHeight),
	}
	for i, n := range []string{"back", "high", "bord", "text", "htext"} {
		fx.cols[i] = drawtest.NewColor(d, n)
	}
	fx.sess = NewSession(d, nil, DefaultConfig())
	fx.sess.Now = fx.clock.Now
	fx.sess.Warn = t.Logf
	return fx
}

// newText returns a Text in r showing a new file holding s.
func (fx *fixture) newText(s string, r image.Rectangle) *Text {
	f := file.NewFile("test")
	f.Insert(0, []rune(s))
	return New(fx.sess, f, r, fx.font, fx.cols)
}

// script makes the session read the mouse samples ms, the first being
// the current one.
func (fx *fixture) script(ms ...draw.Mouse) *drawtest.Mousectl {
	mc := drawtest.NewMousectl(fx.clock, ms[0], ms[1:]...)
	fx.sess.Mousectl = mc
	return mc
}

func (fx *fixture) ops(t *testing.T) drawtest.GettableDrawOps {
	t.Helper()
	return fx.display.(drawtest.GettableDrawOps)
}

func sample(x, y, buttons int, ms uint32) draw.Mouse {
	return draw.Mouse{Point: image.Pt(x, y), Buttons: buttons, Msec: ms}
}

// numbered returns n lines "l00\n", "l01\n" and so on.
func numbered(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("l")
		sb.WriteByte(byte('0' + i/10))
		sb.WriteByte(byte('0' + i%10))
		sb.WriteString("\n")
	}
	return sb.String()
}
