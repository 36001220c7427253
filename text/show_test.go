package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShow(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(20), textRect)

	tx.Show(2, 2, true)
	assert.Equal(t, 0, tx.Org(), "visible position scrolled")
	assert.Equal(t, 2, tx.Q0())

	// The target goes a quarter of the way down.
	tx.Show(60, 62, true)
	assert.Equal(t, 56, tx.Org())
	assert.Equal(t, 60, tx.Q0())
	assert.Equal(t, 62, tx.Q1())

	tx.Show(0, 0, false)
	assert.Equal(t, 0, tx.Org())
	assert.Equal(t, 60, tx.Q0(), "selection changed without doselect")
}

func TestShowEnd(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(3), textRect)

	// The empty line after the last newline is in view.
	tx.Show(12, 12, true)
	assert.Equal(t, 0, tx.Org())
}

func TestSetOriginInexact(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(20), textRect)

	tx.SetOrigin(41, false)
	assert.Equal(t, 44, tx.Org())
	assert.Equal(t, numbered(16)[44:64], string(tx.Frame().Runes()))

	tx.SetOrigin(42, true)
	assert.Equal(t, 42, tx.Org())
	assert.Equal(t, "0\nl11\n", string(tx.Frame().Runes()[:6]))
}

func TestBackNL(t *testing.T) {
	fx := newFixture(t)
	tx := fx.newText(numbered(20), textRect)

	tt := []struct{ p, n, want int }{
		{40, 1, 36},
		{40, 3, 28},
		{42, 0, 40},
		{40, 0, 40},
		{0, 5, 0},
		{6, 10, 0},
	}
	for _, tc := range tt {
		assert.Equal(t, tc.want, tx.BackNL(tc.p, tc.n), "BackNL(%d, %d)", tc.p, tc.n)
	}
}

func TestForwardNL(t *testing.T) {
	fx := newFixture(t)
	long := strings.Repeat("a", 30) + "\nbb\n"
	tabs := "\t\t\t\t\t\tx\n"

	tt := []struct {
		text       string
		p, n, want int
	}{
		{numbered(20), 36, 2, 44},
		{numbered(20), 78, 5, 80},
		// Lines wrap at 20 characters.
		{long, 0, 1, 20},
		{long, 20, 1, 31},
		{long, 0, 2, 31},
		// Five tabs fill a line.
		{tabs, 0, 1, 5},
	}
	for _, tc := range tt {
		tx := fx.newText(tc.text, textRect)
		assert.Equal(t, tc.want, tx.ForwardNL(tc.p, tc.n), "ForwardNL(%d, %d) in %q", tc.p, tc.n, tc.text)
	}
}
