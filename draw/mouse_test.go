package draw

import (
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTranslateMouse(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   drawMouse
		want Mouse
	}{
		{
			name: "button1",
			in:   drawMouse{Point: image.Pt(3, 4), Buttons: 1, Msec: 10},
			want: Mouse{Point: image.Pt(3, 4), Buttons: Button1, Msec: 10},
		},
		{
			name: "wheelup",
			in:   drawMouse{Point: image.Pt(3, 4), Buttons: 8, Msec: 11},
			want: Mouse{Point: image.Pt(3, 4), Buttons: LineScroll, Scroll: -1, Msec: 11},
		},
		{
			name: "wheeldown with button2",
			in:   drawMouse{Buttons: 16 | 2, Msec: 12},
			want: Mouse{Buttons: LineScroll | Button2, Scroll: 1, Msec: 12},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, translateMouse(tc.in)); diff != "" {
				t.Errorf("translateMouse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type nopmover struct{ pt image.Point }

func (n *nopmover) MoveTo(pt image.Point) error {
	n.pt = pt
	return nil
}

func TestMouseEventsWait(t *testing.T) {
	src := make(chan drawMouse, 1)
	mv := &nopmover{}
	mc := newMouseEvents(src, nil, mv)

	if mc.Wait(time.Millisecond) {
		t.Fatalf("Wait reported a sample on an idle source")
	}

	src <- drawMouse{Point: image.Pt(1, 2), Buttons: 4, Msec: 99}
	if !mc.Wait(time.Second) {
		t.Fatalf("Wait timed out with a sample pending")
	}
	if got, want := mc.Current(), (Mouse{Point: image.Pt(1, 2), Buttons: Button3, Msec: 99}); got != want {
		t.Errorf("Current got %v want %v", got, want)
	}

	if err := mc.MoveTo(image.Pt(7, 7)); err != nil {
		t.Fatal(err)
	}
	if mv.pt != image.Pt(7, 7) || mc.Current().Point != image.Pt(7, 7) {
		t.Errorf("MoveTo did not move the pointer")
	}
}

func TestWithAlpha(t *testing.T) {
	if got, want := WithAlpha(0xFFFFFFFF, 0x80), Color(0x80808080); got != want {
		t.Errorf("WithAlpha got %x want %x", got, want)
	}
}
