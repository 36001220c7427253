package frame

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDelete(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		p0, p1    int
		textarea  image.Rectangle
		want      string
		freed     int
		wantfills []string // nil to skip
	}{
		{
			// A backspace at the end of the text.
			name:     "deleteSingleCharacterAtLineEnd",
			text:     "0ab",
			p0:       2,
			p1:       3,
			textarea: image.Rect(20, 10, 60, 49),
			want:     "0a",
			wantfills: []string{
				"screen <- fill (40,10)-(50,23) back",
			},
		},
		{
			name:     "deleteSingleCharacterInMiddle",
			text:     "0ab",
			p0:       1,
			p1:       2,
			textarea: image.Rect(20, 10, 60, 49),
			want:     "0b",
		},
		{
			name:     "deleteNewlineToCreateWrappedLine",
			text:     "0ab\n1cd\n2ef",
			p0:       3,
			p1:       4,
			textarea: image.Rect(20, 10, 60, 49),
			want:     "0ab1cd\n2ef",
		},
		{
			name:     "rippleUpDeletedChar",
			text:     "0ab1cd2ef",
			p0:       1,
			p1:       2,
			textarea: image.Rect(20, 10, 60, 49),
			want:     "0b1cd2ef",
			freed:    1,
		},
		{
			name:     "deleteTab",
			text:     "0\tab1cd2ef",
			p0:       1,
			p1:       2,
			textarea: image.Rect(20, 10, 140, 49),
			want:     "0ab1cd2ef",
			freed:    1,
		},
		{
			name:     "deleteCharBeforeTab",
			text:     "0a\tb1cd2ef",
			p0:       1,
			p1:       2,
			textarea: image.Rect(20, 10, 140, 49),
			want:     "0\tb1cd2ef",
		},
		{
			// Text falls off the bottom; the caller must refill.
			name:     "rippleUpMultiLine",
			text:     "0a\nb1\ncd2\nef",
			p0:       0,
			p1:       6,
			textarea: image.Rect(20, 10, 60, 49),
			want:     "cd2\n",
			freed:    2,
		},
		{
			name:     "p1 past the end is clamped",
			text:     "hello",
			p0:       2,
			p1:       100,
			textarea: image.Rect(20, 10, 220, 49),
			want:     "he",
		},
		{
			name:     "empty range",
			text:     "hello",
			p0:       2,
			p1:       2,
			textarea: image.Rect(20, 10, 220, 49),
			want:     "hello",
		},
	}

	*validate = true
	defer func() { *validate = false }()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fr := setupFrame(t, tc.textarea)
			fr.Insert([]rune(tc.text), 0)
			gdo(t, fr).Clear()

			if got, want := fr.Delete(tc.p0, tc.p1), tc.freed; got != want {
				t.Errorf("lines freed got %d want %d", got, want)
			}
			checkframe(t, fr, tc.want)

			if tc.wantfills != nil {
				if diff := cmp.Diff(tc.wantfills, fills(gdo(t, fr).DrawOps())); diff != "" {
					t.Errorf("fills mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDeleteAdjustsSelection(t *testing.T) {
	tests := []struct {
		name             string
		sp0, sp1         int
		p0, p1           int
		wantsp0, wantsp1 int
	}{
		{"selection after", 6, 8, 1, 3, 4, 6},
		{"selection before", 0, 1, 2, 4, 0, 1},
		{"selection inside", 3, 4, 2, 6, 2, 2},
		{"selection straddles start", 1, 4, 2, 6, 1, 2},
		{"selection straddles end", 3, 8, 2, 6, 2, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fr := setupFrame(t, image.Rect(20, 10, 220, 62))
			fr.Insert([]rune("0123456789"), 0)
			fr.SetSelectionExtent(tc.sp0, tc.sp1)
			fr.Delete(tc.p0, tc.p1)

			p0, p1 := fr.GetSelectionExtent()
			if p0 != tc.wantsp0 || p1 != tc.wantsp1 {
				t.Errorf("selection got [%d,%d) want [%d,%d)", p0, p1, tc.wantsp0, tc.wantsp1)
			}
		})
	}
}

// Insert and Delete in any order keep the frame text equal to the text
// they describe.
func TestInsertDeleteRoundTrip(t *testing.T) {
	fr := setupFrame(t, image.Rect(20, 10, 120, 140))
	model := []rune{}

	edits := []struct {
		ins    string
		p0, p1 int
	}{
		{"The quick brown\tfox\n", 0, 0},
		{"jumps over\nthe lazy dog.\n", 20, 20},
		{"", 4, 10},
		{"slow\t", 4, 4},
		{"", 0, 3},
		{"αβγ\n\n", 2, 2},
		{"", 10, 30},
		{"0123456789012345678901234567890123456789", 5, 5},
		{"", 0, 40},
	}
	for i, e := range edits {
		if e.ins != "" {
			r := []rune(e.ins)
			fr.Insert(r, e.p0)
			model = append(model[:e.p0], append(r, model[e.p0:]...)...)
		} else {
			fr.Delete(e.p0, e.p1)
			p1 := e.p1
			if p1 > len(model) {
				p1 = len(model)
			}
			model = append(model[:e.p0], model[p1:]...)
		}
		nc := fr.GetFrameFillStatus().Nchars
		if nc > len(model) {
			t.Fatalf("edit %d: frame holds %d runes, model %d", i, nc, len(model))
		}
		// The frame may have dropped runes off the bottom.
		model = model[:nc]
		checkframe(t, fr, string(model))
		checkfresh(t, fr)
	}
}
