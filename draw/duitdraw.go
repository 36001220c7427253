//go:build duitdraw || windows
// +build duitdraw windows

package draw

import (
	"image"

	draw "github.com/ktye/duitdraw"
)

const (
	Refnone = draw.Refnone

	KeyDown     = draw.KeyDown
	KeyEnd      = draw.KeyEnd
	KeyHome     = draw.KeyHome
	KeyLeft     = draw.KeyLeft
	KeyPageDown = draw.KeyPageDown
	KeyPageUp   = draw.KeyPageUp
	KeyRight    = draw.KeyRight
	KeyUp       = draw.KeyUp

	Black         = draw.Black
	Darkyellow    = draw.Darkyellow
	Medblue       = draw.Medblue
	Nofill        = draw.Nofill
	Notacolor     = draw.Notacolor
	Opaque        = draw.Opaque
	Palebluegreen = draw.Palebluegreen
	Palegreygreen = draw.Palegreygreen
	Paleyellow    = draw.Paleyellow
	Purpleblue    = draw.Purpleblue
	Transparent   = draw.Transparent
	White         = draw.White
	Yellowgreen   = draw.Yellowgreen
)

var (
	RGB24  = draw.RGB24
	XRGB32 = draw.XRGB32
)

type (
	Color       = draw.Color
	drawDisplay = draw.Display
	drawFont    = draw.Font
	drawImage   = draw.Image
	drawMouse   = draw.Mouse
	Keyboardctl = draw.Keyboardctl
	Pix         = draw.Pix
)

// NewDisplay opens a duitdraw window.
func NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := draw.Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}

// duitdraw draws strings only.
func drawRunes(dst *drawImage, pt image.Point, src *drawImage, sp image.Point, f *drawFont, r []rune) image.Point {
	return dst.String(pt, src, sp, f, string(r))
}

func drawRunesBg(dst *drawImage, pt image.Point, src *drawImage, sp image.Point, f *drawFont, r []rune, bg *drawImage, bgp image.Point) image.Point {
	w := f.StringWidth(string(r))
	dst.Draw(image.Rect(pt.X, pt.Y, pt.X+w, pt.Y+f.Height), bg, nil, bgp)
	return dst.String(pt, src, sp, f, string(r))
}
