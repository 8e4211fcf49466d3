package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/meowcade/engine/core"
)

func clip(c *Camera2D, x, y float32) mgl32.Vec3 {
	return c.Projection().Mul3(c.View()).Mul3x1(mgl32.Vec3{x, y, 1})
}

func TestCameraIdentity(t *testing.T) {
	c := NewCamera2D(200, 100)
	if got := clip(c, 0, 0); !got.ApproxEqual(mgl32.Vec3{-1, 1, 1}) {
		t.Fatalf("top-left = %v", got)
	}
	if got := clip(c, 100, 50); !got.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("center = %v", got)
	}
}

func TestCameraOffsetAndZoom(t *testing.T) {
	c := NewCamera2D(200, 100)
	c.SetOffset(100, 0)
	if got := clip(c, 0, 50); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Fatalf("offset center = %v", got)
	}
	c.SetOffset(0, 0)
	c.SetZoom(2)
	if got := clip(c, 150, 50); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 1}, 1e-5) {
		t.Fatalf("zoomed = %v", got)
	}
	c.SetZoom(0)
	if c.Zoom != 0.05 {
		t.Fatalf("zoom clamp = %v", c.Zoom)
	}
}

func TestShakerStopsOnTimer(t *testing.T) {
	cam := NewCamera2D(100, 100)
	timers := core.NewScheduler()
	s := NewShaker(cam, timers)
	s.SetRand(rand.New(rand.NewPCG(7, 7)))

	s.Shake(200)
	timers.Poll(100)
	s.Update()
	x, y := cam.Offset()
	if !s.Active() || x < 0 || x >= 5 || y < 0 || y >= 5 {
		t.Fatalf("offset (%v,%v) active=%v", x, y, s.Active())
	}

	timers.Poll(200)
	if s.Active() {
		t.Fatal("still shaking after the timer")
	}
	if x, y := cam.Offset(); x != 0 || y != 0 {
		t.Fatalf("offset not reset: (%v,%v)", x, y)
	}
}

func TestShakeExtends(t *testing.T) {
	cam := NewCamera2D(100, 100)
	timers := core.NewScheduler()
	s := NewShaker(cam, timers)
	s.Shake(100)
	timers.Poll(50)
	s.Shake(100) // now due at 150
	timers.Poll(120)
	if !s.Active() {
		t.Fatal("first timer still stopped the shake")
	}
	timers.Poll(150)
	if s.Active() {
		t.Fatal("extended shake did not stop")
	}
}
