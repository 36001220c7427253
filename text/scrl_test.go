package text

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rjkroege/edframe/draw"
)

func TestScrClick(t *testing.T) {
	tt := []struct {
		name    string
		but     int
		org     int
		y       int
		wantorg int
	}{
		// Button 3 brings the line under the pointer to the top.
		{"forward", 3, 0, 3*13 + 2, 12},
		// Button 1 takes the top line down to the pointer.
		{"back", 1, 40, 3*13 + 2, 28},
		// Button 2 jumps to the same fraction of the text.
		{"absolute", 2, 0, 32, 40},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			fx := newFixture(t)
			tx := fx.newText(numbered(20), textRect)
			tx.SetOrigin(tc.org, true)

			butbit := 1 << uint(tc.but-1)
			mc := fx.script(
				sample(6, tc.y, butbit, 100),
				sample(6, tc.y, 0, 110),
			)
			tx.ScrClick(tc.but)
			assert.Equal(t, tc.wantorg, tx.Org())
			assert.Zero(t, mc.Pending())
			assert.Empty(t, mc.Moves, "pointer was already in the bar")
		})
	}
}

func TestScrClickClampsPointer(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(20), textRect)

	mc := fx.script(
		sample(2, 40, draw.Button2, 100),
		sample(2, 40, 0, 110),
	)
	tx.ScrClick(2)
	assert.Equal(t, []image.Point{image.Pt(6, 40)}, mc.Moves)
}

// Holding button 3 scrolls again once the debounce is over.
func TestScrClickRepeats(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(40), textRect)

	mc := fx.script(
		sample(6, 13+2, draw.Button3, 100),
		sample(6, 13+2, 0, 1000),
	)
	tx.ScrClick(3)
	assert.Greater(t, tx.Org(), 4)
	assert.Zero(t, mc.Pending())
}

func TestScrollNL(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(20), textRect)

	tx.ScrollNL(2, false)
	assert.Equal(t, 8, tx.Org())
	tx.ScrollNL(-1, false)
	assert.Equal(t, 4, tx.Org())
	tx.ScrollNL(-10, false)
	assert.Equal(t, 0, tx.Org())

	// Going past the end leaves only the empty line after the final
	// newline below the text.
	tx.ScrollNL(100, false)
	assert.Equal(t, 64, tx.Org())
	assert.Equal(t, 4, tx.Frame().GetFrameFillStatus().Nlines)

	tx.ScrollNL(2, true)
	assert.Equal(t, 72, tx.Org())
}

func TestScrollUpIfPastEnd(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(20), textRect)
	tx.SetOrigin(72, true)

	tx.ScrollUpIfPastEnd()
	assert.Equal(t, 64, tx.Org())
}

func TestWheelScroll(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(20), textRect)

	assert.False(t, tx.WheelScroll(sample(20, 20, draw.Button1, 10)))

	pixels := draw.Mouse{Buttons: draw.PixelScroll, Scroll: 2 * 13, Msec: 20}
	assert.True(t, tx.WheelScroll(pixels))
	assert.Equal(t, 8, tx.Org())

	pixels.Scroll = -13
	tx.WheelScroll(pixels)
	assert.Equal(t, 4, tx.Org())
}
