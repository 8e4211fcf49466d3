package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/meowcade/engine/gfx"
)

// Camera2D maps scene units (top-left origin, Y down) to clip space, with an
// offset, rotation and zoom about the screen center.
type Camera2D struct {
	Width, Height float32
	X, Y          float32 // offset in scene units
	RotationRad   float32
	Zoom          float32 // 1 = no zoom

	proj  mgl32.Mat3
	view  mgl32.Mat3
	dirty bool
}

func NewCamera2D(width, height int) *Camera2D {
	c := &Camera2D{Zoom: 1}
	c.SetViewport(width, height)
	return c
}

func (c *Camera2D) SetViewport(w, h int) {
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *Camera2D) Move(dx, dy float32)        { c.X += dx; c.Y += dy; c.dirty = true }
func (c *Camera2D) SetOffset(x, y float32)     { c.X, c.Y = x, y; c.dirty = true }
func (c *Camera2D) Rotate(dRad float32)        { c.RotationRad += dRad; c.dirty = true }
func (c *Camera2D) Offset() (float32, float32) { return c.X, c.Y }

func (c *Camera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *Camera2D) Projection() mgl32.Mat3 {
	if c.dirty {
		c.Recalculate()
	}
	return c.proj
}

func (c *Camera2D) View() mgl32.Mat3 {
	if c.dirty {
		c.Recalculate()
	}
	return c.view
}

func (c *Camera2D) Recalculate() {
	c.proj = gfx.Ortho2D(c.Width, c.Height)

	// view = T(center) · R · S(zoom) · T(-center) · T(offset)
	cx, cy := c.Width/2, c.Height/2
	c.view = mgl32.Translate2D(cx, cy).
		Mul3(mgl32.HomogRotate2D(c.RotationRad)).
		Mul3(mgl32.Scale2D(c.Zoom, c.Zoom)).
		Mul3(mgl32.Translate2D(-cx+c.X, -cy+c.Y))
	c.dirty = false
}

// Apply hands the matrices to the device for the next draws.
func (c *Camera2D) Apply(dev *gfx.Device) {
	dev.SetProjection(c.Projection())
	dev.SetView(c.View())
}
