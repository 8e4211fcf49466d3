package gfx

import "github.com/hubastard/meowcade/engine/colors"

// SpriteID addresses a sprite in one Batch. The low 32 bits hold the slot
// index plus one and the high 32 bits the slot generation, so zero is never
// a valid id and a recycled slot never answers to an old id.
type SpriteID uint64

func makeSpriteID(index int, gen uint32) SpriteID {
	return SpriteID(uint64(gen)<<32 | uint64(uint32(index+1)))
}

func (id SpriteID) index() int  { return int(uint32(id)) - 1 }
func (id SpriteID) gen() uint32 { return uint32(id >> 32) }

// Content is drawn on top of a sprite and owned by whoever created it.
type Content interface {
	Disable()
}

// Ref names a sprite living in another batch.
type Ref struct {
	Batch *Batch
	ID    SpriteID
}

// Sprite resolves the reference, or nil once the sprite is gone.
func (r Ref) Sprite() *Sprite {
	if r.Batch == nil {
		return nil
	}
	return r.Batch.Get(r.ID)
}

func (r Ref) Disable() {
	if r.Batch != nil {
		r.Batch.Disable(r.ID)
	}
}

// Sprite is one quad instance. Field writes are not observed by the owning
// batch; call Batch.Changed afterwards, or use the methods below which mark
// the batch themselves.
type Sprite struct {
	X, Y  float32
	Size  float32
	Tile  int
	Color colors.Color
	Angle float32

	Enabled bool // false: dropped on the next Batch.Update
	Hidden  bool

	// Rest placement and palette entry, restored by animations and hover.
	BaseX, BaseY float32
	BaseColor    colors.Index
	Inactive     bool

	Content Content

	batch *Batch
	id    SpriteID
}

func (s *Sprite) ID() SpriteID { return s.id }

// SetColor swaps the tint to palette entry c, keeping alpha.
func (s *Sprite) SetColor(c colors.Index) {
	a := s.Color[3]
	s.Color = c.RGB().WithAlpha(a)
	s.changed()
}

// SetBaseColor records c as the rest color and applies it.
func (s *Sprite) SetBaseColor(c colors.Index) {
	s.BaseColor = c
	if !s.Inactive {
		s.SetColor(c)
	}
}

// Activate toggles interactivity. Inactive sprites show the Inactive shade.
func (s *Sprite) Activate(on bool) {
	s.Inactive = !on
	if on {
		s.SetColor(s.BaseColor)
	} else {
		s.SetColor(colors.Inactive)
	}
}

func (s *Sprite) SetHidden(h bool) {
	if s.Hidden != h {
		s.Hidden = h
		s.changed()
	}
}

// Disable marks the sprite for removal together with its content.
func (s *Sprite) Disable() {
	if !s.Enabled {
		return
	}
	s.Enabled = false
	if s.Content != nil {
		s.Content.Disable()
		s.Content = nil
	}
	s.changed()
}

func (s *Sprite) changed() {
	if s.batch != nil {
		s.batch.dirty = true
	}
}

func (s *Sprite) appendInstance(dst []float32, keepHidden bool) []float32 {
	a := s.Color[3]
	if s.Hidden && keepHidden {
		a = 0
	}
	return append(dst,
		s.X, s.Y, s.Size, float32(s.Tile),
		s.Color[0], s.Color[1], s.Color[2], a,
		s.Angle,
	)
}
