// Package frame supports frames of editable text.
//
// A Frame shows a window onto some text in a single font on a raster
// image. Long lines are folded and tabs are at fixed intervals. The text
// is kept as a list of boxes: runs of runes with no tab or newline, and
// single-rune break boxes whose width depends on where they land. Insert
// and Delete update the box list and move the pixels already on the
// image instead of redrawing everything.
//
// A Frame holds only the visible text. The code that owns it (package
// text) maps between buffer offsets and frame offsets and refills the
// frame when Delete frees lines.
package frame
