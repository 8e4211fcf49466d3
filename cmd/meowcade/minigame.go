package main

import (
	"log"

	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/ui"
)

const (
	tagRoundWon core.TimerTag = iota
	tagRoundLost
)

const (
	roundEndDelay = 500 // ms between the result and leaving or restarting

	burstCount    = 128
	burstDuration = 1000
)

// minigameState wraps one running minigame with an exit button and the
// win and lose flow: a win records progress and returns to the lobby, a
// loss starts a fresh round.
type minigameState struct {
	ctx   *Context
	kind  MinigameKind
	game  Minigame
	exit  *ui.Grid
	over  bool
	leave bool
}

func newMinigameState(ctx *Context, kind MinigameKind) *minigameState {
	m := &minigameState{ctx: ctx, kind: kind}
	m.exit = ui.NewGrid(ctx.Device, ctx.Input, ui.GridConfig{
		X:         ctx.Width - 50,
		Y:         10,
		Width:     1,
		Height:    1,
		CellSize:  32,
		OnRelease: m.onExit,
	})
	return m
}

func (m *minigameState) OnEnter() {
	if m.game == nil {
		m.setup()
	}
}

// setup starts a new round from a clean screen.
func (m *minigameState) setup() {
	if m.game != nil {
		m.game.Close()
	}
	m.ctx.Text.Clear()
	m.over = false
	m.game = newMinigame(m.kind, m.ctx, m)
	cell, _ := m.exit.CellAt(0, 0)
	m.exit.Write(cell, m.ctx.Text, "X", 24, colors.Active)
}

func (m *minigameState) onExit(c *ui.Cell) {
	if c != nil {
		m.leave = true
	}
}

func (m *minigameState) Win() {
	if m.over {
		return
	}
	m.over = true
	if m.ctx.Progress.Record(m.kind) {
		log.Printf("[game] %s won for the first time", m.kind)
	}
	m.ctx.Particles.Emit(m.ctx.Width/2, m.ctx.Height/2, true, burstCount, burstDuration)
	m.ctx.Timers.Schedule(roundEndDelay, m, tagRoundWon, false)
}

func (m *minigameState) Lose() {
	if m.over {
		return
	}
	m.over = true
	m.ctx.Timers.Schedule(roundEndDelay, m, tagRoundLost, false)
}

func (m *minigameState) OnTimer(tag core.TimerTag) {
	switch tag {
	case tagRoundWon:
		m.leave = true
	case tagRoundLost:
		m.setup()
	}
}

func (m *minigameState) Update(now float64) core.Transition {
	if m.leave || m.ctx.Input.KeyPressed(core.KeyEscape) || m.ctx.Input.Cancel() {
		return core.Pop()
	}
	m.game.Update(now)
	m.exit.Update()
	return core.Stay()
}

func (m *minigameState) OnExit() {
	m.ctx.Timers.CancelHandler(m)
	if m.game != nil {
		m.game.Close()
	}
	m.ctx.Text.Clear()
}

func (m *minigameState) Draw() {
	m.game.Draw()
	m.exit.Draw()
}
