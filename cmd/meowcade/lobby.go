package main

import (
	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/text"
	"github.com/hubastard/meowcade/engine/ui"
)

// lobbyState is the minigame picker. Each kind takes one cell in order;
// the rest stay inactive.
type lobbyState struct {
	ctx  *Context
	grid *ui.Grid
	next core.State
}

func newLobby(ctx *Context) *lobbyState {
	l := &lobbyState{ctx: ctx}
	l.grid = ui.NewGrid(ctx.Device, ctx.Input, ui.GridConfig{
		X:         100,
		Y:         100,
		Width:     3,
		Height:    3,
		CellSize:  64,
		SpacingX:  32,
		SpacingY:  32,
		OnRelease: l.release,
	})
	return l
}

func (l *lobbyState) kindAt(c *ui.Cell) (MinigameKind, bool) {
	i := c.GridY*l.grid.Width() + c.GridX
	if i >= int(kindCount) {
		return 0, false
	}
	return MinigameKind(i), true
}

// OnEnter runs on first entry and on every return from a minigame.
func (l *lobbyState) OnEnter() {
	l.ctx.Text.Write("PICK A GAME", 100, 40, 32, colors.Active, text.Sine, 0)
	for i := range l.grid.Cells() {
		c := &l.grid.Cells()[i]
		k, ok := l.kindAt(c)
		if !ok {
			l.grid.Activate(c, false)
			continue
		}
		base := colors.Primary
		if l.ctx.Progress.Won(k) {
			base = colors.TabbyCat
		}
		l.grid.SetBaseColor(c, base)
		l.grid.Write(c, l.ctx.Text, k.Label(), 16, colors.Inactive)
	}
}

func (l *lobbyState) release(c *ui.Cell) {
	if c == nil {
		return
	}
	if k, ok := l.kindAt(c); ok {
		l.next = newMinigameState(l.ctx, k)
	}
}

func (l *lobbyState) Update(float64) core.Transition {
	if l.ctx.Input.KeyPressed(core.KeyEscape) {
		return core.Pop()
	}
	l.grid.Update()
	if l.next != nil {
		next := l.next
		l.next = nil
		return core.Push(next)
	}
	return core.Stay()
}

func (l *lobbyState) OnExit() { l.ctx.Text.Clear() }
func (l *lobbyState) Draw()   { l.grid.Draw() }
