package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// glyphRunes lists the mapped runes in tile order.
const glyphRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789?!,.'"

// BuildAtlas renders every mapped glyph in white onto a fixed grid of
// tile-sized cells, columns wide, in tile order. Glyphs are centered
// horizontally and share one baseline per row; anything past the cell edge
// is clipped.
func BuildAtlas(face font.Face, tile, columns int) (*image.RGBA, error) {
	if tile <= 0 || columns <= 0 {
		return nil, fmt.Errorf("font atlas: bad grid %dx%d", tile, columns)
	}
	rows := (len(glyphRunes) + columns - 1) / columns
	dst := image.NewRGBA(image.Rect(0, 0, columns*tile, rows*tile))

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineH := ascent + m.Descent.Ceil()
	top := (tile - lineH) / 2

	for i, r := range glyphRunes {
		bounds, _, ok := face.GlyphBounds(r)
		if !ok {
			return nil, fmt.Errorf("font atlas: face has no glyph for %q", r)
		}
		cx, cy := (i%columns)*tile, (i/columns)*tile
		cell := dst.SubImage(image.Rect(cx, cy, cx+tile, cy+tile)).(*image.RGBA)

		w := (bounds.Max.X - bounds.Min.X).Ceil()
		x := cx + (tile-w)/2 - bounds.Min.X.Floor()

		d := &font.Drawer{Dst: cell, Src: image.White, Face: face}
		d.Dot = fixed.P(x, cy+top+ascent)
		d.DrawString(string(r))
	}
	return dst, nil
}
