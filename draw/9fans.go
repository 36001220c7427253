//go:build !duitdraw && !windows
// +build !duitdraw,!windows

package draw

import (
	"image"

	draw "9fans.net/go/draw"
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

// NewDisplay connects to the display server.
func NewDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := draw.Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, err
	}
	return &displayImpl{d}, nil
}

func drawRunes(dst *drawImage, pt image.Point, src *drawImage, sp image.Point, f *drawFont, r []rune) image.Point {
	return dst.Runes(pt, src, sp, f, r)
}

func drawRunesBg(dst *drawImage, pt image.Point, src *drawImage, sp image.Point, f *drawFont, r []rune, bg *drawImage, bgp image.Point) image.Point {
	return dst.RunesBg(pt, src, sp, f, r, bg, bgp)
}
