// Package ui holds the interactive cell grid shared by every screen.
package ui

import (
	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/gfx"
	"github.com/hubastard/meowcade/engine/text"
)

const (
	CellTexture   = "textures/cells.png"
	CellImageSize = 16
)

// Pointer is the slice of input the grid reads each frame.
type Pointer interface {
	Position() (float32, float32)
	SeenPointer() bool
	Pressed() bool
	Released() bool
}

// Cell is one grid position. Its sprite lives in the grid batch.
type Cell struct {
	GridX, GridY int
	ID           gfx.SpriteID
}

type GridConfig struct {
	X, Y          float32
	Width, Height int // in cells
	CellSize      float32
	SpacingX      float32
	SpacingY      float32
	Color         colors.Index

	// OnRelease fires on every release while the grid is enabled. It gets
	// the cell when press and release landed on the same cell, nil otherwise.
	// A grid without a handler never highlights.
	OnRelease func(c *Cell)
}

// Grid is a width×height matrix of cell sprites with hover, press and
// release tracking.
type Grid struct {
	batch *gfx.Batch
	ptr   Pointer
	cfg   GridConfig
	cells []Cell

	active   *Cell // hovered
	pressed  *Cell
	disabled bool
}

func NewGrid(dev *gfx.Device, ptr Pointer, cfg GridConfig) *Grid {
	g := &Grid{
		batch: gfx.NewBatch(dev, gfx.BatchOptions{
			Texture:    CellTexture,
			ImageSize:  CellImageSize,
			KeepHidden: true,
		}),
		ptr:   ptr,
		cfg:   cfg,
		cells: make([]Cell, 0, cfg.Width*cfg.Height),
	}
	for gy := 0; gy < cfg.Height; gy++ {
		for gx := 0; gx < cfg.Width; gx++ {
			x := cfg.X + float32(gx)*g.fullW()
			y := cfg.Y + float32(gy)*g.fullH()
			g.cells = append(g.cells, Cell{GridX: gx, GridY: gy, ID: g.batch.Add(x, y, cfg.CellSize, 0, cfg.Color)})
		}
	}
	return g
}

func (g *Grid) fullW() float32 { return g.cfg.CellSize + g.cfg.SpacingX }
func (g *Grid) fullH() float32 { return g.cfg.CellSize + g.cfg.SpacingY }

func (g *Grid) Width() int  { return g.cfg.Width }
func (g *Grid) Height() int { return g.cfg.Height }

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// CellAt looks up grid coordinates.
func (g *Grid) CellAt(x, y int) (*Cell, bool) {
	if x < 0 || x >= g.cfg.Width || y < 0 || y >= g.cfg.Height {
		return nil, false
	}
	return &g.cells[y*g.cfg.Width+x], true
}

// CellAtPosition hit-tests a point in scene units. Points in the spacing
// between cells hit nothing.
func (g *Grid) CellAtPosition(px, py float32) (*Cell, bool) {
	relX, relY := px-g.cfg.X, py-g.cfg.Y
	if relX < 0 || relY < 0 {
		return nil, false
	}
	ix, iy := int(relX/g.fullW()), int(relY/g.fullH())
	if relX-float32(ix)*g.fullW() >= g.cfg.CellSize || relY-float32(iy)*g.fullH() >= g.cfg.CellSize {
		return nil, false
	}
	return g.CellAt(ix, iy)
}

// Sprite returns the cell's sprite.
func (g *Grid) Sprite(c *Cell) *gfx.Sprite { return g.batch.Get(c.ID) }

func (g *Grid) Batch() *gfx.Batch { return g.batch }

// Hovered returns the cell under the pointer, if it is interactive.
func (g *Grid) Hovered() *Cell { return g.active }

// Pressed returns the cell a press in progress started on.
func (g *Grid) Pressed() *Cell { return g.pressed }

// SetDisabled suppresses hover, press and release handling. The grid still draws.
func (g *Grid) SetDisabled(d bool) { g.disabled = d }
func (g *Grid) Disabled() bool     { return g.disabled }

// Changed marks the grid batch dirty after direct sprite writes.
func (g *Grid) Changed() { g.batch.Changed() }

// Activate toggles whether c can be hovered.
func (g *Grid) Activate(c *Cell, on bool) {
	if s := g.Sprite(c); s != nil {
		s.Activate(on)
	}
}

func (g *Grid) SetBaseColor(c *Cell, col colors.Index) {
	if s := g.Sprite(c); s != nil {
		s.SetBaseColor(col)
	}
}

func (g *Grid) SetHidden(c *Cell, hidden bool) {
	if s := g.Sprite(c); s != nil {
		s.SetHidden(hidden)
	}
}

// Write replaces the cell content with s centered on the cell.
func (g *Grid) Write(c *Cell, tx *text.Text, s string, size float32, col colors.Index) *text.Segment {
	sp := g.Sprite(c)
	if sp == nil {
		return nil
	}
	g.clearContent(sp)
	off := (sp.Size - size) / 2
	seg := tx.Write(s, sp.X+off, sp.Y+off, size, col, 0, 0)
	sp.Content = seg
	return seg
}

// Mark replaces the cell content with a tile from another batch.
func (g *Grid) Mark(c *Cell, b *gfx.Batch, tile int, size float32, col colors.Index) gfx.Ref {
	sp := g.Sprite(c)
	if sp == nil {
		return gfx.Ref{}
	}
	g.clearContent(sp)
	off := (sp.Size - size) / 2
	ref := gfx.Ref{Batch: b, ID: b.Add(sp.X+off, sp.Y+off, size, tile, col)}
	sp.Content = ref
	return ref
}

// ClearContent tears down whatever was drawn on the cell.
func (g *Grid) ClearContent(c *Cell) {
	if sp := g.Sprite(c); sp != nil {
		g.clearContent(sp)
	}
}

// HasContent reports whether something is drawn on the cell.
func (g *Grid) HasContent(c *Cell) bool {
	sp := g.Sprite(c)
	return sp != nil && sp.Content != nil
}

func (g *Grid) clearContent(sp *gfx.Sprite) {
	if sp.Content != nil {
		sp.Content.Disable()
		sp.Content = nil
	}
}

func (g *Grid) restore(c *Cell) {
	if s := g.Sprite(c); s != nil && !s.Inactive {
		s.SetColor(s.BaseColor)
	}
}

func (g *Grid) tint(c *Cell, col colors.Index) {
	if s := g.Sprite(c); s != nil {
		s.SetColor(col)
	}
}

// Update runs the hover/press/release machine for this frame, then uploads
// the batch if anything changed. It reports whether an upload happened.
func (g *Grid) Update() bool {
	if !g.disabled {
		g.step()
	}
	return g.batch.Update()
}

func (g *Grid) step() {
	handler := g.cfg.OnRelease

	// Hover is re-resolved every enabled frame. Inactive cells never hover.
	var next *Cell
	if g.ptr.SeenPointer() {
		next, _ = g.CellAtPosition(g.ptr.Position())
		if next != nil {
			if s := g.Sprite(next); s == nil || s.Inactive {
				next = nil
			}
		}
	}
	if next != g.active && g.pressed == nil && handler != nil {
		if g.active != nil {
			g.restore(g.active)
		}
		if next != nil {
			g.tint(next, colors.Highlight)
		}
	}
	g.active = next

	if g.ptr.Pressed() {
		g.pressed = g.active
		if handler != nil && g.pressed != nil {
			g.tint(g.pressed, colors.Active)
		}
	}

	if g.ptr.Released() {
		pressed := g.pressed
		g.pressed = nil
		if handler != nil {
			if pressed != nil {
				g.restore(pressed)
			}
			if g.active == pressed {
				handler(pressed)
			} else {
				handler(nil)
			}
		}
	}
}

func (g *Grid) Draw() { g.batch.Draw() }
