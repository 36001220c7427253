package frame

import (
	"image"
	"testing"
)

func TestCharofpt(t *testing.T) {
	r := image.Rect(10, 15, 10+57, 15+57)
	tests := []struct {
		name  string
		boxes []frbox
		stim  image.Point
		want  int
	}{
		{"empty", nil, image.Pt(10+56, 15+56), 0},
		{"one box", makeBoxes("本"), image.Pt(10+56, 15+56), 1},
		{"first pixel of first char", makeBoxes("12345", "本b"), image.Pt(10, 15), 0},
		{"last pixel in first char", makeBoxes("12345", "本b"), image.Pt(10+9, 15), 0},
		{"first pixel of second char", makeBoxes("12345", "本b"), image.Pt(10+10, 15), 1},
		{"second line", makeBoxes("12345", "本b"), image.Pt(10+10, 15+13), 6},
		{"past end of short line", makeBoxes("12", "\n", "34"), image.Pt(10+40, 15), 2},
		{"right of the frame", makeBoxes("12", "\n", "34"), image.Pt(500, 15+14), 5},
		{"below the text", makeBoxes("12", "\n", "34"), image.Pt(10, 15+50), 5},
		{"inside a tab", makeBoxes("1", "\t", "2"), image.Pt(10+25, 15), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := boxframe(r, tc.boxes...)
			if got := f.Charofpt(tc.stim); got != tc.want {
				t.Errorf("Charofpt(%v) got %d want %d", tc.stim, got, tc.want)
			}
		})
	}
}

func TestPtofchar(t *testing.T) {
	r := image.Rect(10, 15, 10+57, 15+57)
	f := boxframe(r, makeBoxes("12345", "本b", "\n", "x")...)
	tests := []struct {
		p    int
		want image.Point
	}{
		{0, image.Pt(10, 15)},
		{4, image.Pt(50, 15)},
		{5, image.Pt(10, 28)},
		{6, image.Pt(20, 28)},
		{7, image.Pt(30, 28)},
		{8, image.Pt(10, 41)},
		{9, image.Pt(20, 41)},
	}
	for _, tc := range tests {
		if got := f.Ptofchar(tc.p); got != tc.want {
			t.Errorf("Ptofchar(%d) got %v want %v", tc.p, got, tc.want)
		}
	}
	if got, want := f.ptofcharnb(6, 1), image.Pt(60, 15); got != want {
		t.Errorf("ptofcharnb(6, 1) got %v want %v", got, want)
	}
}

func TestPtofcharCharofptRoundTrip(t *testing.T) {
	fr := setupFrame(t, image.Rect(20, 10, 120, 140))
	fr.Insert([]rune("The quick brown\tfox\njumps\tover the lazy\n\n\tdog. 0123456789abcdef"), 0)

	nchars := fr.GetFrameFillStatus().Nchars
	for p := 0; p < nchars; p++ {
		pt := fr.Ptofchar(p)
		if got := fr.Charofpt(pt); got != p {
			t.Errorf("Charofpt(Ptofchar(%d) = %v) = %d", p, pt, got)
		}
	}
}
