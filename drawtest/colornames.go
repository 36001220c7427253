package drawtest

import (
	"fmt"

	"github.com/rjkroege/edframe/draw"
)

var colournames = map[draw.Color]string{
	draw.Black:         "Black",
	draw.Darkyellow:    "Darkyellow",
	draw.Medblue:       "Medblue",
	draw.Notacolor:     "Notacolor",
	draw.Palebluegreen: "Palebluegreen",
	draw.Palegreygreen: "Palegreygreen",
	draw.Paleyellow:    "Paleyellow",
	draw.Purpleblue:    "Purpleblue",
	draw.Transparent:   "Transparent",
	draw.White:         "White",
	draw.Yellowgreen:   "Yellowgreen",
}

// NiceColourName names a colour for recorded draw ops.
func NiceColourName(num draw.Color) string {
	if s, ok := colournames[num]; ok {
		return s
	}
	return fmt.Sprintf("color(%x)", uint32(num))
}
