package main

import "fmt"

// MinigameKind is the closed set of playable minigames.
type MinigameKind int

const (
	KindPawPawToe MinigameKind = iota
	KindMeowsweeper

	kindCount
)

// AllKinds lists every kind in lobby order.
func AllKinds() []MinigameKind {
	out := make([]MinigameKind, 0, kindCount)
	for k := MinigameKind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k MinigameKind) String() string {
	switch k {
	case KindPawPawToe:
		return "pawpawtoe"
	case KindMeowsweeper:
		return "meowsweeper"
	}
	return fmt.Sprintf("MinigameKind(%d)", int(k))
}

// Label is the short tag drawn on the lobby cell.
func (k MinigameKind) Label() string {
	switch k {
	case KindPawPawToe:
		return "XO"
	case KindMeowsweeper:
		return "MS"
	}
	return "?"
}

func ParseMinigameKind(s string) (MinigameKind, bool) {
	for _, k := range AllKinds() {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Outcome receives the end of a round.
type Outcome interface {
	Win()
	Lose()
}

// Minigame is the rules of one round. Close cancels its timers.
type Minigame interface {
	Update(now float64)
	Draw()
	Close()
}

func newMinigame(k MinigameKind, ctx *Context, out Outcome) Minigame {
	switch k {
	case KindPawPawToe:
		return newPawPawToe(ctx, out)
	case KindMeowsweeper:
		return newMeowsweeper(ctx, out)
	}
	panic(fmt.Sprintf("newMinigame: unknown kind %d", int(k)))
}
