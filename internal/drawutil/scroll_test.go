package drawutil

import (
	"image"
	"testing"

	"github.com/rjkroege/edframe/draw"
	"github.com/stretchr/testify/assert"
)

func TestMouseScrollSize(t *testing.T) {
	tt := []struct {
		s        string
		maxlines int
		n        int
	}{
		{"", 200, 1},
		{"0", 200, 1},
		{"-1", 200, 1},
		{"-42", 200, 1},
		{"two", 200, 1},
		{"1", 200, 1},
		{"42", 200, 42},
		{"123", 200, 123},
		{"%", 200, 1},
		{"0%", 200, 1},
		{"-1%", 200, 1},
		{"-42%", 200, 1},
		{"five%", 200, 1},
		{"123%", 200, 200},
		{"10%", 200, 20},
		{"100%", 200, 200},
		{"50%", 7, 3},
	}
	for _, tc := range tt {
		t.Setenv("mousescrollsize", tc.s)
		n := mouseScrollSize(always{}, tc.maxlines)
		assert.Equal(t, tc.n, n, "mousescrollsize of %q for %v lines", tc.s, tc.maxlines)
	}
}

type always struct{}

func (a always) Do(f func()) { f() }

func TestParseScrollSize(t *testing.T) {
	assert.Equal(t, ScrollSize{Lines: 3}, ParseScrollSize("3"))
	assert.Equal(t, ScrollSize{Percent: 25}, ParseScrollSize("25%"))
	assert.Equal(t, ScrollSize{}, ParseScrollSize("x%"))
}

func pixels(n int, ms uint32) draw.Mouse {
	return draw.Mouse{Buttons: draw.PixelScroll, Scroll: n, Msec: ms}
}

func gesture(b int, ms uint32) draw.Mouse {
	return draw.Mouse{Buttons: b, Msec: ms}
}

func TestLineSnapWheel(t *testing.T) {
	var s LineSnap
	assert.Equal(t, -1, s.Lines(draw.Mouse{Buttons: draw.LineScroll, Scroll: -1}, 13))
	assert.Equal(t, 3, s.Lines(draw.Mouse{Buttons: draw.LineScroll | draw.Button1, Scroll: 3}, 13))
	assert.Equal(t, 0, s.Lines(draw.Mouse{Buttons: draw.Button1}, 13))
}

func TestLineSnapCarriesPixels(t *testing.T) {
	var s LineSnap
	assert.Equal(t, 0, s.Lines(gesture(draw.ScrollMotionStart, 0), 10))
	assert.True(t, s.InMotion())

	assert.Equal(t, 0, s.Lines(pixels(6, 10), 10))
	assert.Equal(t, 1, s.Lines(pixels(6, 20), 10))
	assert.Equal(t, 0, s.Lines(pixels(6, 30), 10))

	// Reversing drops the pixels owed the other way.
	assert.Equal(t, 0, s.Lines(pixels(-4, 40), 10))
	assert.Equal(t, -1, s.Lines(pixels(-6, 50), 10))

	assert.Equal(t, 0, s.Lines(gesture(draw.ScrollMotionStop, 60), 10))
	assert.False(t, s.InMotion())

	// Outside a gesture there is no carry.
	assert.Equal(t, 0, s.Lines(pixels(9, 70), 10))
	assert.Equal(t, 0, s.Lines(pixels(9, 80), 10))
	assert.Equal(t, 2, s.Lines(pixels(25, 90), 10))
}

func TestLineSnapInertiaCarryover(t *testing.T) {
	var s LineSnap
	s.Lines(gesture(draw.ScrollInertiaStart, 1000), 10)
	assert.Equal(t, 2, s.Lines(pixels(20, 1010), 10))

	// Inertia carried the pointer into another text.
	s.Refocus()
	assert.Equal(t, 0, s.Lines(pixels(30, 1020), 10))
	assert.Equal(t, 0, s.Lines(pixels(-30, 1030), 10))
	s.Lines(gesture(draw.ScrollInertiaStop, 1100), 10)

	// More inertia straight after continues the halted gesture.
	s.Lines(gesture(draw.ScrollInertiaStart, 1120), 10)
	assert.Equal(t, 0, s.Lines(pixels(30, 1130), 10))
	s.Lines(gesture(draw.ScrollInertiaStop, 1200), 10)

	// A late inertia start is a fresh gesture.
	s.Lines(gesture(draw.ScrollInertiaStart, 1300), 10)
	assert.Equal(t, 3, s.Lines(pixels(30, 1310), 10))
}

func TestScrPos(t *testing.T) {
	r := image.Rect(0, 0, 12, 100)
	for _, tc := range []struct {
		name        string
		p0, p1, tot int
		want        image.Rectangle
	}{
		{"empty", 0, 0, 0, r},
		{"all", 0, 10, 10, r},
		{"middle", 25, 50, 100, image.Rect(0, 25, 12, 50)},
		{"tiny", 50, 50, 100, image.Rect(0, 50, 12, 52)},
		{"tinyAtEnd", 100, 100, 100, image.Rect(0, 98, 12, 100)},
		{"huge", 1 << 21, 1<<21 + 1<<20, 1 << 22, image.Rect(0, 50, 12, 75)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScrPos(r, tc.p0, tc.p1, tc.tot))
		})
	}
}
