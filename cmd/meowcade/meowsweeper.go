package main

import (
	"strconv"

	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/text"
	"github.com/hubastard/meowcade/engine/ui"
)

const (
	sweepSize  = 10
	sweepMines = 10

	sweepLoseDelay = 2000 // ms the uncovered mines stay on screen
	sweepShake     = 300
)

const tagSweepLose core.TimerTag = 0

type sweepMode int

const (
	modeDig sweepMode = iota
	modeFlag
)

type sweepCell struct {
	mine    bool
	opened  bool
	flagged bool
	near    int
}

// meowsweeper is minesweeper on a 10×10 board. Mines are laid on the first
// dig, away from the dug cell and its neighbours.
type meowsweeper struct {
	ctx     *Context
	out     Outcome
	grid    *ui.Grid
	buttons *ui.Grid
	dig     *ui.Cell
	flag    *ui.Cell
	cells   [sweepSize * sweepSize]sweepCell
	mode    sweepMode
	started bool
	over    bool
}

func newMeowsweeper(ctx *Context, out Outcome) *meowsweeper {
	m := &meowsweeper{ctx: ctx, out: out}
	m.grid = ui.NewGrid(ctx.Device, ctx.Input, ui.GridConfig{
		X:         100,
		Y:         150,
		Width:     sweepSize,
		Height:    sweepSize,
		CellSize:  32,
		SpacingX:  4,
		SpacingY:  4,
		OnRelease: m.release,
	})
	m.buttons = ui.NewGrid(ctx.Device, ctx.Input, ui.GridConfig{
		X:         10,
		Y:         10,
		Width:     2,
		Height:    1,
		CellSize:  32,
		SpacingX:  10,
		OnRelease: m.pick,
	})
	m.dig, _ = m.buttons.CellAt(0, 0)
	m.flag, _ = m.buttons.CellAt(1, 0)
	m.buttons.Write(m.dig, ctx.Text, "O", 30, colors.Active)
	m.buttons.Write(m.flag, ctx.Text, "X", 30, colors.Active)
	m.setMode(modeDig)

	ctx.Text.Write("MEOWSWEEPER", 50, 50, 32, colors.Inactive, text.Sine, 0)
	ctx.Text.Write("SCRATCH MY BACK BUT\nONLY WHERE I LIKE IT", 50, 525, 32, colors.Active, text.Typing, 0)
	return m
}

func (m *meowsweeper) at(x, y int) *sweepCell { return &m.cells[y*sweepSize+x] }

func inBoard(x, y int) bool { return x >= 0 && x < sweepSize && y >= 0 && y < sweepSize }

// setMode makes the button for the current mode inactive.
func (m *meowsweeper) setMode(mode sweepMode) {
	m.mode = mode
	m.buttons.Activate(m.dig, mode != modeDig)
	m.buttons.Activate(m.flag, mode != modeFlag)
}

func (m *meowsweeper) pick(c *ui.Cell) {
	switch c {
	case m.dig:
		m.setMode(modeDig)
	case m.flag:
		m.setMode(modeFlag)
	}
}

func (m *meowsweeper) release(c *ui.Cell) {
	if c == nil || m.over {
		return
	}
	switch m.mode {
	case modeDig:
		if !m.started {
			m.lay(c.GridX, c.GridY)
		}
		if m.at(c.GridX, c.GridY).flagged {
			return
		}
		m.open(c.GridX, c.GridY)
	case modeFlag:
		m.toggleFlag(c)
	}
}

// lay places the mines and counts neighbours. Cells within one step of
// (sx, sy) never hold a mine.
func (m *meowsweeper) lay(sx, sy int) {
	m.started = true
	var spots []int
	for y := 0; y < sweepSize; y++ {
		for x := 0; x < sweepSize; x++ {
			if abs(x-sx) <= 1 && abs(y-sy) <= 1 {
				continue
			}
			spots = append(spots, y*sweepSize+x)
		}
	}
	m.ctx.Rand.Shuffle(len(spots), func(i, j int) { spots[i], spots[j] = spots[j], spots[i] })
	for _, i := range spots[:min(sweepMines, len(spots))] {
		m.cells[i].mine = true
	}
	m.count()
}

func (m *meowsweeper) count() {
	for y := 0; y < sweepSize; y++ {
		for x := 0; x < sweepSize; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && inBoard(x+dx, y+dy) && m.at(x+dx, y+dy).mine {
						n++
					}
				}
			}
			m.at(x, y).near = n
		}
	}
}

func (m *meowsweeper) toggleFlag(c *ui.Cell) {
	sc := m.at(c.GridX, c.GridY)
	if sc.opened {
		return
	}
	sc.flagged = !sc.flagged
	if sc.flagged {
		m.grid.Write(c, m.ctx.Text, "X", 26, colors.Highlight)
	} else {
		m.grid.ClearContent(c)
	}
}

// open uncovers (x, y). Empty cells flood into their four neighbours.
func (m *meowsweeper) open(x, y int) {
	if !inBoard(x, y) {
		return
	}
	sc := m.at(x, y)
	if sc.opened {
		return
	}
	c, _ := m.grid.CellAt(x, y)
	if sc.flagged {
		sc.flagged = false
		m.grid.ClearContent(c)
	}
	sc.opened = true
	m.grid.Activate(c, false)

	switch {
	case sc.mine:
		m.explode()
		return
	case sc.near == 0:
		m.grid.SetHidden(c, true)
		m.open(x-1, y)
		m.open(x+1, y)
		m.open(x, y-1)
		m.open(x, y+1)
	default:
		m.grid.Write(c, m.ctx.Text, strconv.Itoa(sc.near), 26, colors.InactiveN(sc.near))
	}
	m.checkWin()
}

func (m *meowsweeper) explode() {
	m.over = true
	for i := range m.cells {
		if !m.cells[i].mine {
			continue
		}
		c := &m.grid.Cells()[i]
		m.grid.Activate(c, false)
		m.grid.Write(c, m.ctx.Text, "X", 26, colors.Inactive10)
	}
	m.grid.SetDisabled(true)
	m.ctx.Shaker.Shake(sweepShake)
	m.ctx.Timers.Schedule(sweepLoseDelay, m, tagSweepLose, false)
}

// checkWin ends the round once every covered cell is a mine.
func (m *meowsweeper) checkWin() {
	if m.over {
		return
	}
	for _, sc := range m.cells {
		if !sc.opened && !sc.mine {
			return
		}
	}
	m.over = true
	m.grid.SetDisabled(true)
	m.out.Win()
}

func (m *meowsweeper) OnTimer(tag core.TimerTag) {
	if tag != tagSweepLose {
		return
	}
	for i := range m.grid.Cells() {
		m.grid.ClearContent(&m.grid.Cells()[i])
	}
	m.out.Lose()
}

func (m *meowsweeper) Update(float64) {
	if !m.over {
		switch {
		case m.ctx.Input.Left():
			m.setMode(modeDig)
		case m.ctx.Input.Right():
			m.setMode(modeFlag)
		}
	}
	m.grid.Update()
	m.buttons.Update()
}

func (m *meowsweeper) Draw() {
	m.grid.Draw()
	m.buttons.Draw()
}

func (m *meowsweeper) Close() { m.ctx.Timers.CancelHandler(m) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
