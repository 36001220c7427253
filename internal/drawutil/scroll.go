// Package drawutil maps scroll wheels, trackpads and scrollbars onto
// lines of text.
package drawutil

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// ScrollSize is a parsed $mousescrollsize: either a fixed number of
// lines or a percentage of the window.
type ScrollSize struct {
	Lines   int
	Percent float64
}

// ParseScrollSize parses s as an integer number of lines or as a real
// number followed by '%'. Malformed or non-positive values give the
// zero ScrollSize, which scrolls one line.
func ParseScrollSize(s string) ScrollSize {
	if s == "" {
		return ScrollSize{}
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(pct, 32)
		if err != nil || p <= 0 {
			return ScrollSize{}
		}
		if p > 100 {
			p = 100
		}
		return ScrollSize{Percent: p}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return ScrollSize{}
	}
	return ScrollSize{Lines: n}
}

// For returns the number of lines one wheel click scrolls in a window
// of maxlines lines.
func (ss ScrollSize) For(maxlines int) int {
	switch {
	case ss.Lines > 0:
		return ss.Lines
	case ss.Percent > 0:
		return int(ss.Percent * float64(maxlines) / 100.0)
	}
	return 1
}

type doer interface {
	Do(func())
}

var (
	scrollSizeOnce sync.Once
	envScrollSize  ScrollSize
)

// MouseScrollSize computes the number of lines of text that should be
// scrolled in response to a mouse scroll wheel click. Maxlines is the
// number of lines visible in the text window.
//
// The default scroll increment is one line. This default can be overridden
// by setting the $mousescrollsize environment variable to an integer,
// which specifies a constant number of lines, or to a real number followed
// by a percent character, indicating that the scroll increment should be a
// percentage of the total number of lines in the window. For example,
// setting $mousescrollsize to 50% causes a half-window scroll increment.
func MouseScrollSize(maxlines int) int {
	return mouseScrollSize(&scrollSizeOnce, maxlines)
}

func mouseScrollSize(once doer, maxlines int) int {
	once.Do(func() {
		envScrollSize = ParseScrollSize(os.Getenv("mousescrollsize"))
	})
	return envScrollSize.For(maxlines)
}
