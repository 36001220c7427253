package ui

import (
	"image"
	"testing"
)

func TestGeometrySplit(t *testing.T) {
	tests := []struct {
		name    string
		scale   func(int) int
		r       image.Rectangle
		scrollr image.Rectangle
		framer  image.Rectangle
	}{
		{
			name:    "unscaled",
			r:       image.Rect(10, 20, 210, 120),
			scrollr: image.Rect(10, 20, 22, 120),
			framer:  image.Rect(26, 20, 210, 120),
		},
		{
			name:    "doubled",
			scale:   func(n int) int { return 2 * n },
			r:       image.Rect(0, 0, 200, 100),
			scrollr: image.Rect(0, 0, 24, 100),
			framer:  image.Rect(32, 0, 200, 100),
		},
		{
			name:    "narrow",
			r:       image.Rect(0, 0, 10, 100),
			scrollr: image.Rect(0, 0, 12, 100),
			framer:  image.Rect(10, 0, 10, 100),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGeometry(13, tc.scale)
			scrollr, framer := g.Split(tc.r)
			if scrollr != tc.scrollr {
				t.Errorf("scrollr got %v want %v", scrollr, tc.scrollr)
			}
			if framer != tc.framer {
				t.Errorf("framer got %v want %v", framer, tc.framer)
			}
		})
	}
}

func TestGeometryTrim(t *testing.T) {
	g := NewGeometry(13, nil)
	r := image.Rect(0, 0, 100, 40)
	if got, want := g.Trim(r, false), image.Rect(0, 0, 100, 39); got != want {
		t.Errorf("Trim got %v want %v", got, want)
	}
	if got := g.Trim(r, true); got != r {
		t.Errorf("Trim keepextra got %v want %v", got, r)
	}
	if got, want := g.Trim(image.Rectangle{Min: image.Pt(0, 50), Max: image.Pt(100, 40)}, false), image.Rect(0, 50, 100, 50); got != want {
		t.Errorf("Trim inverted got %v want %v", got, want)
	}
}

func TestGeometryLines(t *testing.T) {
	g := NewGeometry(13, nil)
	tests := []struct {
		height, lines int
	}{
		{0, 0},
		{12, 0},
		{13, 1},
		{40, 3},
		{-5, 0},
	}
	for _, tc := range tests {
		if got := g.LinesForHeight(tc.height); got != tc.lines {
			t.Errorf("LinesForHeight(%d) got %d want %d", tc.height, got, tc.lines)
		}
	}
	if got := g.HeightForLines(3); got != 39 {
		t.Errorf("HeightForLines(3) got %d want 39", got)
	}

	if got := NewGeometry(0, nil).LinesForHeight(100); got != 0 {
		t.Errorf("LinesForHeight with no font got %d want 0", got)
	}
}
