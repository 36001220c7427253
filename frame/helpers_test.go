package frame

import (
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/drawtest"
	"github.com/sanity-io/litter"
)

const fixedwidth = drawtest.FontWidth

// makeBox creates somewhat realistic test boxes in the fixed width font.
func makeBox(s string) frbox {
	switch s {
	case "\t":
		return frbox{
			Wid:    5000,
			Nrune:  -1,
			Bc:     '\t',
			Minwid: fixedwidth,
		}
	case "\n":
		return frbox{
			Wid:   5000,
			Nrune: -1,
			Bc:    '\n',
		}
	}
	r := []rune(s)
	return frbox{
		Wid:   fixedwidth * len(r),
		Nrune: len(r),
		R:     r,
	}
}

func makeBoxes(ss ...string) []frbox {
	b := make([]frbox, 0, len(ss))
	for _, s := range ss {
		b = append(b, makeBox(s))
	}
	return b
}

func testfont() draw.Font {
	return drawtest.NewFont(fixedwidth, drawtest.FontHeight)
}

// boxframe returns a detached frame of size r holding boxes.
func boxframe(r image.Rectangle, boxes ...frbox) *frameimpl {
	f := &frameimpl{
		font:              testfont(),
		defaultfontheight: drawtest.FontHeight,
		rect:              r,
		maxtab:            8 * fixedwidth,
		box:               boxes,
	}
	for i := range boxes {
		f.nchars += nrune(&boxes[i])
	}
	return f
}

// setupFrame returns a Frame of size r drawing on a recording display.
// The colours are named after their role.
func setupFrame(t *testing.T, r image.Rectangle, opts ...OptionClosure) Frame {
	t.Helper()

	display := drawtest.NewDisplay(image.Rect(0, 0, 800, 600))
	var cols [NumColours]draw.Image
	for i, n := range []string{"back", "high", "bord", "text", "htext"} {
		cols[i] = drawtest.NewColor(display, n)
	}
	opts = append([]OptionClosure{
		OptColors(cols),
		OptBackground(display.ScreenImage()),
		OptFont(testfont()),
	}, opts...)
	return NewFrame(r, opts...)
}

func gdo(t *testing.T, fr Frame) drawtest.GettableDrawOps {
	t.Helper()
	return fr.(*frameimpl).display.(drawtest.GettableDrawOps)
}

// fills returns the fill ops in ops.
func fills(ops []string) []string {
	var f []string
	for _, op := range ops {
		if strings.Contains(op, " <- fill ") {
			f = append(f, op)
		}
	}
	return f
}

// checkframe verifies the box model of fr and that it holds text.
func checkframe(t *testing.T, fr Frame, text string) {
	t.Helper()
	f := fr.(*frameimpl)

	if diff := cmp.Diff(text, string(f.Runes())); diff != "" {
		t.Errorf("frame text mismatch (-want +got):\n%s\nboxes: %s", diff, litter.Sdump(f.box))
	}
	if got, want := f.nchars, len([]rune(text)); got != want {
		t.Errorf("nchars got %d want %d", got, want)
	}
	for i := range f.box {
		b := &f.box[i]
		if b.Nrune < 0 {
			continue
		}
		if b.Nrune != len(b.R) || b.Wid != f.font.RunesWidth(b.R) {
			t.Errorf("box %d inconsistent: %s", i, litter.Sdump(*b))
		}
	}
	if f.sp0 > f.sp1 || f.sp1 > f.nchars {
		t.Errorf("selection [%d,%d) outside of frame of %d", f.sp0, f.sp1, f.nchars)
	}
}

// checkfresh verifies that fr, built up by edits, lays out exactly as a
// frame of the same size filled by a single Insert, and that every
// character it holds is drawn inside it.
func checkfresh(t *testing.T, fr Frame, opts ...OptionClosure) {
	t.Helper()
	f := fr.(*frameimpl)
	text := fr.Runes()

	fresh := setupFrame(t, f.rect, opts...)
	fresh.Insert(text, 0)
	if diff := cmp.Diff(string(text), string(fresh.Runes())); diff != "" {
		t.Fatalf("incremental layout holds runes a fresh one drops (-inc +fresh):\n%s\nboxes: %s", diff, litter.Sdump(f.box))
	}
	for p := 0; p <= len(text); p++ {
		got, want := fr.Ptofchar(p), fresh.Ptofchar(p)
		if got != want {
			t.Errorf("Ptofchar(%d) incremental %v fresh %v", p, got, want)
		}
		if p < len(text) && got.Y+f.defaultfontheight > f.rect.Max.Y {
			t.Errorf("char %d %q at %v is below %v", p, text[p], got, f.rect)
		}
	}
}
