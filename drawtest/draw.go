// Package drawtest contains a headless display, fonts and a scripted
// input source for testing frames and texts.
package drawtest

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rjkroege/edframe/draw"
)

var _ = draw.Display((*mockDisplay)(nil))

// Metrics of the font returned by OpenFont.
const (
	FontWidth  = 10
	FontHeight = 13
)

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	drawops     []string
	screenimage draw.Image
	flushes     int
}

// NewDisplay returns a mock draw.Display whose screen image covers screen.
func NewDisplay(screen image.Rectangle) draw.Display {
	md := &mockDisplay{}
	md.screenimage = newimageimpl(md, "screen", draw.Notacolor, screen)
	return md
}

func (d *mockDisplay) ScreenImage() draw.Image {
	return d.screenimage
}

func (d *mockDisplay) White() draw.Image {
	return &mockImage{d: d, n: "white", c: draw.White, repl: true, r: image.Rect(0, 0, 1, 1)}
}
func (d *mockDisplay) Black() draw.Image {
	return &mockImage{d: d, n: "black", c: draw.Black, repl: true, r: image.Rect(0, 0, 1, 1)}
}
func (d *mockDisplay) Opaque() draw.Image {
	return &mockImage{d: d, n: "opaque", c: draw.Opaque, repl: true, r: image.Rect(0, 0, 1, 1)}
}
func (d *mockDisplay) Transparent() draw.Image {
	return &mockImage{d: d, n: "transparent", c: draw.Transparent, repl: true, r: image.Rect(0, 0, 1, 1)}
}
func (d *mockDisplay) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }
func (d *mockDisplay) InitMouse() *draw.MouseEvents    { return &draw.MouseEvents{} }

func (d *mockDisplay) OpenFont(name string) (draw.Font, error) {
	return NewFont(FontWidth, FontHeight), nil
}

func (d *mockDisplay) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	return &mockImage{
		d:    d,
		r:    r,
		c:    val,
		repl: repl,
	}, nil
}

func (d *mockDisplay) AllocImageMix(color1, color3 draw.Color) draw.Image {
	c1 := draw.WithAlpha(color1, 0x3f) >> 8
	c3 := draw.WithAlpha(color3, 0xbf) >> 8
	c := ((c1 + c3) << 8) | 0xff

	return &mockImage{
		d:    d,
		r:    image.Rect(0, 0, 1, 1),
		repl: true,
		c:    c,
	}
}

func (d *mockDisplay) Attach(ref int) error        { return nil }
func (d *mockDisplay) Flush() error                { d.flushes++; return nil }
func (d *mockDisplay) ScaleSize(n int) int         { return n }
func (d *mockDisplay) MoveTo(pt image.Point) error { return nil }
func (d *mockDisplay) DrawOps() []string           { return d.drawops }
func (d *mockDisplay) Clear()                      { d.drawops = nil }

var _ = draw.Image((*mockImage)(nil))

// mockImage implements draw.Image.
type mockImage struct {
	r    image.Rectangle
	d    *mockDisplay
	n    string
	c    draw.Color
	repl bool
}

func newimageimpl(d *mockDisplay, name string, c draw.Color, r image.Rectangle) draw.Image {
	return &mockImage{
		r: r,
		d: d,
		c: c,
		n: name,
	}
}

// NewColor returns a named replicated single-pixel image. Drawing with
// it is recorded as a fill.
func NewColor(display draw.Display, name string) draw.Image {
	d := display.(*mockDisplay)
	return &mockImage{d: d, n: name, c: draw.Notacolor, repl: true, r: image.Rect(0, 0, 1, 1)}
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) Pix() draw.Pix         { return 0 }
func (i *mockImage) R() image.Rectangle    { return i.r }

func imagename(i draw.Image) string {
	if mi, ok := i.(*mockImage); ok {
		return mi.N()
	}
	return "nil"
}

// Draw records a blit when src is the destination, a fill when src is
// replicated and a plain draw otherwise.
func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	var op string
	msrc, _ := src.(*mockImage)
	switch {
	case msrc == i:
		sr := r.Sub(r.Min).Add(p1)
		op = fmt.Sprintf("%s <- blit %v from %v", i.N(), r, sr)
	case msrc != nil && msrc.repl:
		op = fmt.Sprintf("%s <- fill %v %s", i.N(), r, msrc.N())
	default:
		op = fmt.Sprintf("%s <- draw %v src: %s mask: %s p1: %v", i.N(), r, imagename(src), imagename(mask), p1)
	}
	i.d.drawops = append(i.d.drawops, op)
}

func (i *mockImage) Runes(pt image.Point, src draw.Image, sp image.Point, f draw.Font, r []rune) image.Point {
	op := fmt.Sprintf("%s <- runes %q at %v fg %s", i.N(), string(r), pt, imagename(src))
	i.d.drawops = append(i.d.drawops, op)
	return pt.Add(image.Pt(f.RunesWidth(r), 0))
}

func (i *mockImage) RunesBg(pt image.Point, src draw.Image, sp image.Point, f draw.Font, r []rune, bg draw.Image, bgp image.Point) image.Point {
	op := fmt.Sprintf("%s <- runes %q at %v fg %s bg %s", i.N(), string(r), pt, imagename(src), imagename(bg))
	i.d.drawops = append(i.d.drawops, op)
	return pt.Add(image.Pt(f.RunesWidth(r), 0))
}

func (i *mockImage) Free() error { return nil }

// N returns a nice name for the image.
func (i *mockImage) N() string {
	name := i.n
	if name == "" {
		name = NiceColourName(i.c)
	}
	if i.repl && i.n == "" {
		name += ",tiled"
	}
	return name
}

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font and mocks a fixed width font.
type mockFont struct {
	width, height int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

const MockFontName = "/lib/font/bit/lucsans/euro.8.font"

func (f *mockFont) Name() string             { return Plan9FontPath(MockFontName) }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *mockFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }

// Plan9FontPath maps a /lib/font/bit font name into $PLAN9.
func Plan9FontPath(name string) string {
	const prefix = "/lib/font/bit"
	if strings.HasPrefix(name, prefix) {
		root := os.Getenv("PLAN9")
		if root == "" {
			root = "/usr/local/plan9"
		}
		return filepath.Join(root, "/font/", name[len(prefix):])
	}
	return name
}
