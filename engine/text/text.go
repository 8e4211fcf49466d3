// Package text draws bitmap-font strings as animated glyph sprites.
package text

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/gfx"
)

// Center, passed as x or y to Write, centers the text on that axis. Any
// other value, negative ones included, is a plain coordinate.
const Center float32 = math.MaxFloat32

const (
	FontTexture = "textures/font.png"
	LetterSize  = 16 // atlas tile edge in texels
)

// Tile maps r to its font atlas tile. Letters are uppercase only.
func Tile(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= '0' && r <= '9':
		return 26 + int(r-'0'), true
	}
	switch r {
	case '?':
		return 36, true
	case '!':
		return 37, true
	case ',':
		return 38, true
	case '.':
		return 39, true
	case '\'':
		return 40, true
	}
	return 0, false
}

// GlyphCount is the number of mapped tiles.
const GlyphCount = 41

// Text is a sprite batch of glyphs grouped into segments.
type Text struct {
	batch    *gfx.Batch
	width    float32
	height   float32
	segments []*Segment
	rnd      func() float64
}

// New creates the text batch for a screen of the given size in scene units.
func New(dev *gfx.Device, screenW, screenH float32) *Text {
	return &Text{
		batch:  gfx.NewBatch(dev, gfx.BatchOptions{Texture: FontTexture, ImageSize: LetterSize}),
		width:  screenW,
		height: screenH,
		rnd:    rand.Float64,
	}
}

// SetRand replaces the jitter source used by Shake.
func (t *Text) SetRand(r *rand.Rand) { t.rnd = r.Float64 }

func (t *Text) Batch() *gfx.Batch { return t.batch }

// Segments reports live segments.
func (t *Text) Segments() int { return len(t.segments) }

// Write lays out s starting at (x, y) with one size-wide cell per rune and
// one size-high row per line. Unmapped runes leave a gap.
func (t *Text) Write(s string, x, y, size float32, c colors.Index, anims Animation, delay float64) *Segment {
	lines := strings.Split(s, "\n")
	if x == Center {
		longest := 0
		for _, l := range lines {
			longest = max(longest, len([]rune(l)))
		}
		x = float32(int(t.width/2 - float32(longest)*size/2))
	}
	if y == Center {
		y = float32(int(t.height/2 - float32(len(lines))*size/2))
	}

	seg := &Segment{
		Text:    s,
		X:       x,
		Y:       y,
		Size:    size,
		Color:   c,
		Anims:   anims,
		Delay:   delay,
		owner:   t,
		enabled: true,
	}
	cx, cy := x, y
	for _, r := range s {
		if r == '\n' {
			cx = x
			cy += size
			continue
		}
		if tile, ok := Tile(r); ok {
			seg.glyphs = append(seg.glyphs, t.batch.Add(cx, cy, size, tile, c))
		}
		cx += size
	}
	t.segments = append(t.segments, seg)
	t.batch.Changed()
	return seg
}

// Clear tears down every segment.
func (t *Text) Clear() {
	for _, seg := range t.segments {
		seg.disableGlyphs()
		seg.enabled = false
	}
	t.segments = t.segments[:0]
	t.batch.Changed()
}

// Changed marks the batch dirty after direct glyph writes.
func (t *Text) Changed() { t.batch.Changed() }

// Update drops disabled segments, runs animations and uploads if anything
// changed. It reports whether the instance buffer was rebuilt.
func (t *Text) Update(now float64) bool {
	live := t.segments[:0]
	for _, seg := range t.segments {
		if !seg.enabled {
			seg.disableGlyphs()
			continue
		}
		live = append(live, seg)
	}
	clear(t.segments[len(live):])
	t.segments = live

	for _, seg := range t.segments {
		if seg.animate(now, t.rnd) {
			t.batch.Changed()
		}
	}
	return t.batch.Update()
}

func (t *Text) Draw() { t.batch.Draw() }
