package main

import (
	"log"
	"math/rand/v2"

	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/gfx"
	"github.com/hubastard/meowcade/engine/profiler"
)

const (
	SpriteTexture   = "textures/sprites.png"
	SpriteImageSize = 16

	cursorSize   = 26
	cursorOffset = 6 // the paw tip sits this far into the sprite
)

// Game is the core.App driving the screen stack.
type Game struct {
	cfg      core.Config
	dev      *gfx.Device
	progress *Progress
	rnd      *rand.Rand

	ctx    *Context
	states core.StateStack
	cursor *gfx.Batch
	paw    gfx.SpriteID
	win    core.Window
}

var _ core.App = (*Game)(nil)

// NewGame prepares the app. UseDevice must be called before OnStart. A nil
// rnd seeds a fresh source.
func NewGame(cfg core.Config, progress *Progress, rnd *rand.Rand) *Game {
	return &Game{cfg: cfg, progress: progress, rnd: rnd}
}

// UseDevice sets the device the game draws with.
func (g *Game) UseDevice(dev *gfx.Device) { g.dev = dev }

func (g *Game) Context() *Context        { return g.ctx }
func (g *Game) States() *core.StateStack { return &g.states }

func (g *Game) OnStart(e *core.Engine) {
	g.win = e.Window
	g.ctx = NewContext(g.dev, e.Input, e.Timers, g.progress, g.cfg.Width, g.cfg.Height, g.rnd)
	g.cursor = gfx.NewBatch(g.dev, gfx.BatchOptions{Texture: SpriteTexture, ImageSize: SpriteImageSize})
	g.paw = g.cursor.Add(0, 0, cursorSize, 0, colors.BlackCat)
	g.cursor.Get(g.paw).Hidden = true
	g.states.Push(newTitle(g.ctx))
	log.Printf("[game] started, %d/%d minigames won", g.progress.WonCount(), kindCount)
}

func (g *Game) OnUpdate(e *core.Engine, now float64) {
	defer profiler.Start("update")()
	g.dev.BeginFrame()
	g.ctx.Shaker.Update()

	g.states.Update(now)
	if g.states.Len() == 0 {
		if g.win != nil {
			g.win.RequestClose()
		}
		return
	}

	g.ctx.Text.Update(now)
	g.ctx.Particles.Update(now)
	g.updateCursor()
}

func (g *Game) updateCursor() {
	in := g.ctx.Input
	s := g.cursor.Get(g.paw)
	if s == nil {
		return
	}
	show := in.SeenPointer() && in.Precise()
	if show == s.Hidden {
		s.SetHidden(!show)
	}
	if show && in.Moved() {
		x, y := in.Position()
		s.X, s.Y = x-cursorOffset, y-cursorOffset
		g.cursor.Changed()
	}
	g.cursor.Update()
}

func (g *Game) OnRender(e *core.Engine) {
	defer profiler.Start("render")()
	if g.states.Len() == 0 {
		return
	}
	g.ctx.Camera.Apply(g.dev)
	g.states.Draw()
	g.ctx.Text.Draw()
	g.ctx.Particles.Draw()
	g.cursor.Draw()
}

func (g *Game) OnEvent(e *core.Engine, ev core.Event) {
	if r, ok := ev.(core.EventResize); ok {
		log.Printf("[game] resized to %dx%d", r.W, r.H)
	}
}

func (g *Game) OnShutdown(e *core.Engine) {
	for g.states.Len() > 0 {
		g.states.Pop()
	}
	if err := g.progress.Save(); err != nil {
		log.Printf("[game] %v", err)
	}
}
