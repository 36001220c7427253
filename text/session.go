package text

import (
	"image"
	"log"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/internal/dragscroll"
	"github.com/rjkroege/edframe/internal/drawutil"
	"github.com/rjkroege/edframe/internal/ui"
)

// Config holds the tunables of the texts of a session.
type Config struct {
	TabStop         int     // in widths of '0'
	DoubleClickMsec uint32  // longest gap between the clicks of a double click
	ShowFraction    float64 // how far down the frame Show puts its target
	ZoneLines       int     // minimum depth of a selection scroll zone, in lines
	EaseMsec        int     // time for selection scrolling to reach full speed
	AutoIndent      bool
}

// DefaultConfig returns the configuration acme users expect.
func DefaultConfig() Config {
	return Config{
		TabStop:         4,
		DoubleClickMsec: ui.DoubleClickMsec,
		ShowFraction:    0.25,
		ZoneLines:       3,
		EaseMsec:        200,
	}
}

// Session is the state shared by the texts of one editor: the input
// source, the display, the last click and the snarf buffer. It is passed
// to every Text instead of living in globals.
type Session struct {
	Display  draw.Display
	Mousectl draw.Mousectl

	Clicks *ui.ClickState
	Wheel  drawutil.LineSnap
	Snarf  []rune

	// Now is a millisecond wall clock.
	Now func() uint32

	// Warn reports a problem to the user.
	Warn func(format string, args ...interface{})

	Config Config
}

// NewSession creates a Session reading the mouse from mc and drawing on d.
func NewSession(d draw.Display, mc draw.Mousectl, cfg Config) *Session {
	return &Session{
		Display:  d,
		Mousectl: mc,
		Clicks:   ui.NewClickState(cfg.DoubleClickMsec),
		Now:      dragscroll.Monotonic,
		Warn:     log.Printf,
		Config:   cfg,
	}
}

func (s *Session) warn(format string, args ...interface{}) {
	if s.Warn != nil {
		s.Warn(format, args...)
	}
}

// screen returns the area the pointer can reach.
func (s *Session) screen() image.Rectangle {
	return s.Display.ScreenImage().R()
}
