// Package fx holds short-lived visual effects.
package fx

import (
	"math"
	"math/rand/v2"

	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/gfx"
)

const (
	particleSize  = 5
	particleSpeed = 5 // max units per frame
)

type particle struct {
	id       gfx.SpriteID
	dx, dy   float32
	duration float64
	begin    float64
	started  bool
}

// Particles is an untextured batch of burst particles that drift and fade.
type Particles struct {
	batch *gfx.Batch
	live  []particle
	rnd   func() float64
}

func NewParticles(dev *gfx.Device) *Particles {
	return &Particles{
		batch: gfx.NewBatch(dev, gfx.BatchOptions{}),
		rnd:   rand.Float64,
	}
}

// SetRand replaces the source for directions, speeds and tints.
func (p *Particles) SetRand(r *rand.Rand) { p.rnd = r.Float64 }

func (p *Particles) Batch() *gfx.Batch { return p.batch }

// Len reports particles still alive.
func (p *Particles) Len() int { return len(p.live) }

// Emit spawns count particles at (x, y) that live for durationMs. Colorful
// particles get a random tint, the rest a random light grey.
func (p *Particles) Emit(x, y float32, colorful bool, count int, durationMs float64) {
	for i := 0; i < count; i++ {
		id := p.batch.Add(x, y, particleSize, 0, colors.Primary)
		s := p.batch.Get(id)
		if colorful {
			s.Color = colors.Color{float32(p.rnd()), float32(p.rnd()), float32(p.rnd()), 1}
		} else {
			g := float32(0.5 + p.rnd()*0.5)
			s.Color = colors.Color{g, g, g, 1}
		}
		angle := p.rnd() * math.Pi * 2
		speed := p.rnd() * particleSpeed
		p.live = append(p.live, particle{
			id:       id,
			dx:       float32(math.Cos(angle) * speed),
			dy:       float32(math.Sin(angle) * speed),
			duration: durationMs,
		})
	}
	p.batch.Changed()
}

// Clear removes every particle.
func (p *Particles) Clear() {
	for _, pt := range p.live {
		p.batch.Disable(pt.id)
	}
	p.live = p.live[:0]
}

// Update advances one frame. A particle's clock starts on its first update.
func (p *Particles) Update(now float64) bool {
	if len(p.live) == 0 {
		return p.batch.Update()
	}
	kept := p.live[:0]
	for _, pt := range p.live {
		s := p.batch.Get(pt.id)
		if s == nil {
			continue
		}
		s.X += pt.dx
		s.Y += pt.dy
		if !pt.started {
			pt.begin, pt.started = now, true
		}
		if pt.begin+pt.duration <= now {
			s.Disable()
			continue
		}
		s.Color[3] = float32(1 - (now-pt.begin)/pt.duration)
		kept = append(kept, pt)
	}
	clear(p.live[len(kept):])
	p.live = kept
	p.batch.Changed()
	return p.batch.Update()
}

func (p *Particles) Draw() { p.batch.Draw() }
