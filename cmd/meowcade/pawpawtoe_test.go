package main

import (
	"testing"

	"github.com/hubastard/meowcade/engine/ui"
)

func pawCell(p *pawPawToe, i int) *ui.Cell { return &p.grid.Cells()[i] }

func countSym(p *pawPawToe, sym rune) int {
	n := 0
	for _, s := range p.board {
		if s == sym {
			n++
		}
	}
	return n
}

func TestPawPawToeOpponentReplies(t *testing.T) {
	ctx := testContext(t)
	var o outcomes
	p := newPawPawToe(ctx, &o)

	p.release(pawCell(p, 4))
	if p.board[4] != pawPlayer || !p.grid.Disabled() {
		t.Fatal("player move not applied")
	}
	if !p.grid.HasContent(pawCell(p, 4)) || !p.grid.Sprite(pawCell(p, 4)).Inactive {
		t.Fatal("marked cell still interactive")
	}
	p.release(pawCell(p, 4))
	if countSym(p, pawPlayer) != 1 {
		t.Fatal("occupied cell marked twice")
	}

	ctx.Timers.Poll(pawReplyDelay - 1)
	if countSym(p, pawOpponent) != 0 {
		t.Fatal("opponent moved early")
	}
	ctx.Timers.Poll(pawReplyDelay)
	if countSym(p, pawOpponent) != 1 || p.board[4] != pawPlayer {
		t.Fatalf("board after reply = %q", p.board)
	}
	if p.grid.Disabled() {
		t.Fatal("grid not re-enabled after reply")
	}
}

func TestPawPawToeOutcomes(t *testing.T) {
	cases := []struct {
		name   string
		marks  string // board cells in order, '.' skips
		wins   int
		losses int
	}{
		{"row of paws", "XXX......", 1, 0},
		{"diagonal for the opponent", "O...O...O", 0, 1},
		{"full board", "XOXXOOOXX", 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var o outcomes
			p := newPawPawToe(testContext(t), &o)
			for i, r := range c.marks {
				if r != '.' {
					p.mark(pawCell(p, i), r)
				}
			}
			if o.wins != c.wins || o.losses != c.losses {
				t.Fatalf("wins/losses = %d/%d, want %d/%d", o.wins, o.losses, c.wins, c.losses)
			}
			if !p.over || !p.grid.Disabled() {
				t.Fatal("round not closed")
			}
		})
	}
}

func TestPawPawToeWinSkipsReply(t *testing.T) {
	ctx := testContext(t)
	var o outcomes
	p := newPawPawToe(ctx, &o)
	p.mark(pawCell(p, 0), pawPlayer)
	p.mark(pawCell(p, 1), pawPlayer)

	p.release(pawCell(p, 2))
	if o.wins != 1 {
		t.Fatalf("wins = %d", o.wins)
	}
	if ctx.Timers.Len() != 0 {
		t.Fatal("reply scheduled after the winning move")
	}
	p.release(pawCell(p, 5))
	if p.board[5] != 0 {
		t.Fatal("move accepted after the round ended")
	}
}

func TestPawPawToeCloseCancelsReply(t *testing.T) {
	ctx := testContext(t)
	p := newPawPawToe(ctx, &outcomes{})
	p.release(pawCell(p, 0))
	p.Close()
	ctx.Timers.Poll(pawReplyDelay)
	if countSym(p, pawOpponent) != 0 {
		t.Fatal("reply fired after Close")
	}
}
