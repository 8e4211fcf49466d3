package main

import (
	"math/rand/v2"

	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/fx"
	"github.com/hubastard/meowcade/engine/gfx"
	"github.com/hubastard/meowcade/engine/scene"
	"github.com/hubastard/meowcade/engine/text"
)

// Context bundles the services every screen draws on.
type Context struct {
	Device    *gfx.Device
	Input     *core.Input
	Timers    *core.Scheduler
	Text      *text.Text
	Camera    *scene.Camera2D
	Shaker    *scene.Shaker
	Particles *fx.Particles
	Progress  *Progress
	Rand      *rand.Rand

	Width, Height float32
}

// NewContext builds the shared services for a screen of w×h scene units.
// A nil rnd seeds a fresh source.
func NewContext(dev *gfx.Device, in *core.Input, timers *core.Scheduler, progress *Progress, w, h int, rnd *rand.Rand) *Context {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	cam := scene.NewCamera2D(w, h)
	ctx := &Context{
		Device:    dev,
		Input:     in,
		Timers:    timers,
		Text:      text.New(dev, float32(w), float32(h)),
		Camera:    cam,
		Shaker:    scene.NewShaker(cam, timers),
		Particles: fx.NewParticles(dev),
		Progress:  progress,
		Rand:      rnd,
		Width:     float32(w),
		Height:    float32(h),
	}
	ctx.Text.SetRand(rnd)
	ctx.Shaker.SetRand(rnd)
	ctx.Particles.SetRand(rnd)
	return ctx
}
