package text

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rjkroege/edframe/draw"
	"github.com/rjkroege/edframe/frame"
)

func TestSelectSweep(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText("hello world", textRect)

	mc := fx.script(
		sample(frameX+5, 5, draw.Button1, 100),
		sample(frameX+45, 5, draw.Button1, 120),
		sample(frameX+45, 5, 0, 140),
	)
	tx.Select()
	assert.Equal(t, 0, tx.Q0())
	assert.Equal(t, 4, tx.Q1())
	assert.Zero(t, mc.Pending())
	assert.False(t, fx.sess.Clicks.HasSaved())
}

func TestSelectDoubleClick(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText("foo(bar)baz", textRect)
	x := frameX + 80 + 2 // inside the cell of the 'b' after ')'

	fx.script(
		sample(x, 5, draw.Button1, 100),
		sample(x, 5, 0, 110),
	)
	tx.Select()
	assert.Equal(t, 8, tx.Q0())
	assert.Equal(t, 8, tx.Q1())
	assert.True(t, fx.sess.Clicks.HasSaved())

	mc := fx.script(
		sample(x, 5, draw.Button1, 300),
		sample(x, 5, 0, 310),
	)
	tx.Select()
	assert.Equal(t, 3, tx.Q0())
	assert.Equal(t, 8, tx.Q1())
	assert.Zero(t, mc.Pending())
	assert.False(t, fx.sess.Clicks.HasSaved())
}

func TestSelectSlowSecondClickIsSingle(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText("foo(bar)baz", textRect)
	x := frameX + 80 + 2

	fx.script(sample(x, 5, draw.Button1, 100), sample(x, 5, 0, 110))
	tx.Select()
	fx.script(sample(x, 5, draw.Button1, 900), sample(x, 5, 0, 910))
	tx.Select()
	assert.Equal(t, 8, tx.Q0())
	assert.Equal(t, 8, tx.Q1())
}

func TestSelectChordCut(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText("hello world", textRect)

	mc := fx.script(
		sample(frameX, 5, draw.Button1, 100),
		sample(frameX+50, 5, draw.Button1, 120),
		sample(frameX+50, 5, draw.Button1|draw.Button2, 130),
		sample(frameX+50, 5, draw.Button1, 140),
		sample(frameX+50, 5, 0, 150),
	)
	tx.Select()
	assert.Equal(t, " world", tx.File().String())
	assert.Equal(t, "hello", string(fx.sess.Snarf))
	assert.Equal(t, 0, tx.Q0())
	assert.Equal(t, 0, tx.Q1())
	assert.Zero(t, mc.Pending())
}

// Dragging above the frame scrolls the text back and extends the
// selection to the new top line.
func TestSelectScrollsAbove(t *testing.T) {
	fx := newFixture(t)
	r := image.Rect(0, 150, 216, 215)
	tx := fx.newText(numbered(20), r)
	tx.SetOrigin(40, true)

	// Press on line 2, one character in, then rest 20 pixels above.
	mc := fx.script(
		sample(frameX+15, 150+2*13+5, draw.Button1, 100),
		sample(frameX+15, 130, draw.Button1, 200),
		sample(frameX+15, 130, 0, 1000),
	)
	tx.Select()
	assert.Less(t, tx.Org(), 40)
	assert.Equal(t, tx.Org(), tx.Q0())
	assert.Equal(t, 49, tx.Q1())
	assert.Zero(t, mc.Pending())
}

// A drag inside the frame does not scroll even near its edges.
func TestSelectInsideFrameDoesNotScroll(t *testing.T) {
	fx := newFixture(t)
	r := image.Rect(0, 150, 216, 215)
	tx := fx.newText(numbered(20), r)
	tx.SetOrigin(40, true)

	fx.script(
		sample(frameX+15, 150+2*13+5, draw.Button1, 100),
		sample(frameX+15, 150+5, draw.Button1, 200),
		sample(frameX+15, 150+5, 0, 1000),
	)
	tx.Select()
	assert.Equal(t, 40, tx.Org())
	assert.Equal(t, 41, tx.Q0())
	assert.Equal(t, 49, tx.Q1())
}

func TestSelect23(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText("hello world", textRect)
	tx.SetSelect(7, 7)

	mc := fx.script(
		sample(frameX, 5, draw.Button2, 100),
		sample(frameX+50, 5, draw.Button2, 120),
		sample(frameX+50, 5, 0, 140),
	)
	buts, q0, q1 := tx.Select23(fx.cols[frame.ColHigh], draw.Button1|draw.Button3)
	assert.Equal(t, 0, buts)
	assert.Equal(t, 0, q0)
	assert.Equal(t, 5, q1)
	assert.Equal(t, 7, tx.Q0(), "the text's own selection changed")
	assert.Zero(t, mc.Pending())
}

func TestSelect23Cancelled(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText("hello world", textRect)
	tx.SetSelect(7, 9)

	fx.script(
		sample(frameX, 5, draw.Button2, 100),
		sample(frameX+50, 5, draw.Button2, 120),
		sample(frameX+50, 5, draw.Button2|draw.Button1, 130),
		sample(frameX+50, 5, 0, 140),
	)
	buts, q0, q1 := tx.Select23(fx.cols[frame.ColHigh], draw.Button1|draw.Button3)
	assert.Equal(t, draw.Button1|draw.Button2, buts)
	assert.Equal(t, 7, q0)
	assert.Equal(t, 9, q1)
}
