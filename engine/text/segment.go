package text

import (
	"math"

	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/gfx"
)

// Animation is a set of per-frame glyph effects.
type Animation uint8

const (
	Sine   Animation = 1 << iota // vertical wave across the glyphs
	Shake                        // jitter around the base position every 7th frame
	Typing                       // glyphs appear one by one, 150 ms apart
)

const (
	sineAmplitude = 10
	sinePeriod    = 200
	shakeEvery    = 7
	shakeReach    = 5
	typingStep    = 150
)

// Segment is one written string. Its glyphs live in the owning Text batch
// and are torn down together.
type Segment struct {
	Text  string
	X, Y  float32
	Size  float32
	Color colors.Index
	Anims Animation
	Delay float64 // ms before Typing starts revealing

	owner   *Text
	glyphs  []gfx.SpriteID
	enabled bool
	ticks   int
	begin   float64
	started bool
}

// Disable removes the segment on the next Text.Update.
func (s *Segment) Disable() {
	if !s.enabled {
		return
	}
	s.enabled = false
	s.owner.batch.Changed()
}

func (s *Segment) Enabled() bool { return s.enabled }

// Len reports glyph sprites, excluding unmapped runes.
func (s *Segment) Len() int { return len(s.glyphs) }

// Glyph returns the i-th glyph sprite, or nil once torn down.
func (s *Segment) Glyph(i int) *gfx.Sprite {
	if i < 0 || i >= len(s.glyphs) {
		return nil
	}
	return s.owner.batch.Get(s.glyphs[i])
}

func (s *Segment) SetColor(c colors.Index) {
	s.Color = c
	for _, id := range s.glyphs {
		if g := s.owner.batch.Get(id); g != nil {
			g.SetColor(c)
		}
	}
}

func (s *Segment) disableGlyphs() {
	for _, id := range s.glyphs {
		s.owner.batch.Disable(id)
	}
}

func (s *Segment) animate(now float64, rnd func() float64) bool {
	if s.Anims == 0 {
		return false
	}
	b := s.owner.batch
	if s.Anims&Sine != 0 {
		for i, id := range s.glyphs {
			if g := b.Get(id); g != nil {
				g.Y = g.BaseY + float32(math.Sin(float64(i)+now/sinePeriod)*sineAmplitude)
			}
		}
	}
	if s.Anims&Shake != 0 {
		s.ticks++
		if s.ticks == shakeEvery {
			s.ticks = 0
			for _, id := range s.glyphs {
				if g := b.Get(id); g != nil {
					g.X = g.BaseX + float32(rnd()*shakeReach)
					g.Y = g.BaseY + float32(rnd()*shakeReach)
				}
			}
		}
	}
	if s.Anims&Typing != 0 {
		if !s.started {
			s.begin, s.started = now, true
		}
		for i, id := range s.glyphs {
			if g := b.Get(id); g != nil {
				g.Hidden = (now-s.begin-s.Delay)/typingStep < float64(i)
			}
		}
	}
	return true
}
