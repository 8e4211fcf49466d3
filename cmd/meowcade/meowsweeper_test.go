package main

import (
	"testing"

	"github.com/hubastard/meowcade/engine/core"
	"github.com/hubastard/meowcade/engine/ui"
)

func sweepCellAt(m *meowsweeper, x, y int) *ui.Cell {
	c, _ := m.grid.CellAt(x, y)
	return c
}

// seed lays mines at fixed spots instead of on the first dig.
func seed(m *meowsweeper, mines ...[2]int) {
	m.started = true
	for _, p := range mines {
		m.at(p[0], p[1]).mine = true
	}
	m.count()
}

func TestMeowsweeperFirstDigIsSafe(t *testing.T) {
	ctx := testContext(t)
	var o outcomes
	m := newMeowsweeper(ctx, &o)

	m.release(sweepCellAt(m, 5, 5))
	mines := 0
	for y := 0; y < sweepSize; y++ {
		for x := 0; x < sweepSize; x++ {
			if !m.at(x, y).mine {
				continue
			}
			mines++
			if abs(x-5) <= 1 && abs(y-5) <= 1 {
				t.Errorf("mine at (%d,%d) next to the first dig", x, y)
			}
		}
	}
	if mines != sweepMines {
		t.Fatalf("mines = %d, want %d", mines, sweepMines)
	}
	if !m.at(5, 5).opened || o.losses != 0 {
		t.Fatal("first dig not opened safely")
	}
	if !m.grid.Sprite(sweepCellAt(m, 5, 5)).Hidden {
		t.Fatal("empty cell left visible")
	}
}

func TestMeowsweeperFloodFillWins(t *testing.T) {
	var o outcomes
	m := newMeowsweeper(testContext(t), &o)
	seed(m, [2]int{9, 9})

	m.release(sweepCellAt(m, 0, 0))
	for y := 0; y < sweepSize; y++ {
		for x := 0; x < sweepSize; x++ {
			if want := !(x == 9 && y == 9); m.at(x, y).opened != want {
				t.Errorf("(%d,%d) opened = %v", x, y, m.at(x, y).opened)
			}
		}
	}
	if !m.grid.HasContent(sweepCellAt(m, 8, 8)) {
		t.Fatal("digit missing next to the mine")
	}
	if m.grid.HasContent(sweepCellAt(m, 0, 0)) {
		t.Fatal("empty cell got content")
	}
	if o.wins != 1 || !m.grid.Disabled() {
		t.Fatalf("wins = %d, disabled = %v", o.wins, m.grid.Disabled())
	}
	m.release(sweepCellAt(m, 9, 9))
	if o.wins != 1 || o.losses != 0 {
		t.Fatal("board reacted after the win")
	}
}

func TestMeowsweeperMineLoses(t *testing.T) {
	ctx := testContext(t)
	var o outcomes
	m := newMeowsweeper(ctx, &o)
	seed(m, [2]int{0, 0}, [2]int{5, 5})

	m.release(sweepCellAt(m, 0, 0))
	if !m.over || !m.grid.Disabled() || !ctx.Shaker.Active() {
		t.Fatal("mine hit did not end the round")
	}
	for _, p := range [][2]int{{0, 0}, {5, 5}} {
		if !m.grid.HasContent(sweepCellAt(m, p[0], p[1])) {
			t.Errorf("mine (%d,%d) not uncovered", p[0], p[1])
		}
	}

	ctx.Timers.Poll(sweepLoseDelay - 1)
	if o.losses != 0 {
		t.Fatal("lost before the delay")
	}
	ctx.Timers.Poll(sweepLoseDelay)
	if o.losses != 1 {
		t.Fatalf("losses = %d", o.losses)
	}
	if m.grid.HasContent(sweepCellAt(m, 5, 5)) {
		t.Fatal("content kept after the loss")
	}
}

func TestMeowsweeperFlags(t *testing.T) {
	var o outcomes
	m := newMeowsweeper(testContext(t), &o)
	seed(m, [2]int{9, 9})
	c := sweepCellAt(m, 0, 0)

	m.setMode(modeFlag)
	m.release(c)
	if !m.at(0, 0).flagged || !m.grid.HasContent(c) {
		t.Fatal("flag not placed")
	}
	m.setMode(modeDig)
	m.release(c)
	if m.at(0, 0).opened {
		t.Fatal("flagged cell dug")
	}
	m.setMode(modeFlag)
	m.release(c)
	if m.at(0, 0).flagged || m.grid.HasContent(c) {
		t.Fatal("flag not removed")
	}
	if o.wins != 0 {
		t.Fatal("flagging won the round")
	}
}

func TestMeowsweeperModeKeys(t *testing.T) {
	ctx := testContext(t)
	m := newMeowsweeper(ctx, &outcomes{})
	if !m.buttons.Sprite(m.dig).Inactive || m.buttons.Sprite(m.flag).Inactive {
		t.Fatal("dig button should start inactive")
	}

	press := func(k core.Key) {
		ctx.Input.Handle(core.EventKey{Key: k, Down: true})
		ctx.Input.Update()
		m.Update(0)
		ctx.Input.Handle(core.EventKey{Key: k})
		ctx.Input.Update()
	}
	press(core.KeyD)
	if m.mode != modeFlag || !m.buttons.Sprite(m.flag).Inactive || m.buttons.Sprite(m.dig).Inactive {
		t.Fatal("D did not switch to flagging")
	}
	press(core.KeyLeft)
	if m.mode != modeDig {
		t.Fatal("Left did not switch to digging")
	}
}
