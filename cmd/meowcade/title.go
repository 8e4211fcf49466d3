package main

import (
	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/text"
)

type titleState struct {
	ctx *Context
}

func newTitle(ctx *Context) *titleState { return &titleState{ctx: ctx} }

func (t *titleState) OnEnter() {
	tx := t.ctx.Text
	tx.Write("CAT GAME", 10, 10, 52, colors.BlackCat, text.Sine, 0)
	tx.Write("CLICK TO BEGIN", 10, 150, 32, colors.Highlight, text.Typing|text.Shake, 0)
	tx.Write("A GAME BY ATTILA HORVATH", 10, 300, 32, colors.Active, text.Typing|text.Sine, 0)
	tx.Write("THIS IS THE DOMAIN OF", 10, 400, 32, colors.Active, text.Typing, 0)
	tx.Write("QUEEN KARA", 10, 500, 32, colors.Active, text.Typing|text.Sine, 4000)
}

func (t *titleState) Update(float64) core.Transition {
	in := t.ctx.Input
	if in.KeyPressed(core.KeyEscape) {
		return core.Pop()
	}
	if in.Confirm() || in.Click() {
		in.ConsumeClick()
		return core.Replace(newLobby(t.ctx))
	}
	return core.Stay()
}

func (t *titleState) OnExit() { t.ctx.Text.Clear() }
func (t *titleState) Draw()   {}
