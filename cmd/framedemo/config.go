package main

import (
	"image"
	"strconv"

	"github.com/rjkroege/edframe/text"
)

// configure builds the text configuration from the command line and the
// environment. A tabstop flag beats $tabstop.
func configure(getenv func(string) string, tabstop int, autoindent bool) text.Config {
	cfg := text.DefaultConfig()
	if tabstop <= 0 {
		if p := getenv("tabstop"); p != "" {
			mt, _ := strconv.ParseInt(p, 10, 32)
			tabstop = int(mt)
		}
	}
	if tabstop > 0 {
		cfg.TabStop = tabstop
	}
	cfg.AutoIndent = autoindent
	return cfg
}

// fontName picks the font: the flag, then $font, then the display's
// default.
func fontName(getenv func(string) string, flagval string) string {
	if flagval != "" {
		return flagval
	}
	return getenv("font")
}

// split divides r into n panes stacked vertically, separated by gap
// pixels. The last pane takes what is left over.
func split(r image.Rectangle, n, gap int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	panes := make([]image.Rectangle, n)
	h := (r.Dy() - (n-1)*gap) / n
	y := r.Min.Y
	for i := range panes {
		p := r
		p.Min.Y = y
		p.Max.Y = y + h
		if i == n-1 || p.Max.Y > r.Max.Y {
			p.Max.Y = r.Max.Y
		}
		if p.Min.Y > p.Max.Y {
			p.Min.Y = p.Max.Y
		}
		panes[i] = p
		y = p.Max.Y + gap
	}
	return panes
}
