package main

import (
	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/ui"
)

const (
	pawPlayer   = 'X'
	pawOpponent = 'O'

	pawReplyDelay = 1000 // ms before the opponent moves
)

const tagPawReply core.TimerTag = 0

var pawLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// pawPawToe is three-in-a-row against an opponent picking random cells.
type pawPawToe struct {
	ctx     *Context
	out     Outcome
	grid    *ui.Grid
	board   [9]rune
	over    bool
	pending bool
	reply   core.TimerID
}

func newPawPawToe(ctx *Context, out Outcome) *pawPawToe {
	p := &pawPawToe{ctx: ctx, out: out}
	p.grid = ui.NewGrid(ctx.Device, ctx.Input, ui.GridConfig{
		X:         100,
		Y:         150,
		Width:     3,
		Height:    3,
		CellSize:  64,
		SpacingX:  20,
		SpacingY:  20,
		OnRelease: p.release,
	})
	return p
}

func (p *pawPawToe) index(c *ui.Cell) int { return c.GridY*3 + c.GridX }

func (p *pawPawToe) release(c *ui.Cell) {
	if c == nil || p.over || p.board[p.index(c)] != 0 {
		return
	}
	p.mark(c, pawPlayer)
	if p.over {
		return
	}
	p.grid.SetDisabled(true)
	p.pending = true
	p.reply = p.ctx.Timers.Schedule(pawReplyDelay, p, tagPawReply, false)
}

func (p *pawPawToe) OnTimer(tag core.TimerTag) {
	if tag != tagPawReply || p.over {
		return
	}
	p.pending = false
	var free []*ui.Cell
	for i := range p.grid.Cells() {
		if p.board[i] == 0 {
			free = append(free, &p.grid.Cells()[i])
		}
	}
	if len(free) > 0 {
		p.mark(free[p.ctx.Rand.IntN(len(free))], pawOpponent)
	}
	if !p.over {
		p.grid.SetDisabled(false)
	}
}

func (p *pawPawToe) mark(c *ui.Cell, sym rune) {
	p.board[p.index(c)] = sym
	p.grid.Activate(c, false)
	p.grid.Write(c, p.ctx.Text, string(sym), 16, colors.Highlight)
	p.check()
}

// winner returns the symbol completing a line, or 0.
func (p *pawPawToe) winner() rune {
	for _, l := range pawLines {
		s := p.board[l[0]]
		if s != 0 && s == p.board[l[1]] && s == p.board[l[2]] {
			return s
		}
	}
	return 0
}

func (p *pawPawToe) full() bool {
	for _, s := range p.board {
		if s == 0 {
			return false
		}
	}
	return true
}

// check ends the round on a line or a full board. A draw counts as a loss
// so the round restarts.
func (p *pawPawToe) check() {
	w := p.winner()
	if w == 0 && !p.full() {
		return
	}
	p.over = true
	p.grid.SetDisabled(true)
	if p.pending {
		p.ctx.Timers.Cancel(p.reply)
		p.pending = false
	}
	if w == pawPlayer {
		p.out.Win()
	} else {
		p.out.Lose()
	}
}

func (p *pawPawToe) Update(float64) { p.grid.Update() }
func (p *pawPawToe) Draw()          { p.grid.Draw() }
func (p *pawPawToe) Close()         { p.ctx.Timers.CancelHandler(p) }
