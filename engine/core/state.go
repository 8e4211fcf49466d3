package core

// State is one screen of the game: the title, the lobby, a running minigame.
type State interface {
	OnEnter()
	OnExit()
	Update(now float64) Transition
	Draw()
}

type transitionKind int

const (
	transitionStay transitionKind = iota
	transitionPush
	transitionPop
	transitionReplace
)

// Transition is what a state asks the stack to do after its update.
type Transition struct {
	kind transitionKind
	next State
}

func Stay() Transition           { return Transition{kind: transitionStay} }
func Pop() Transition            { return Transition{kind: transitionPop} }
func Push(s State) Transition    { return Transition{kind: transitionPush, next: s} }
func Replace(s State) Transition { return Transition{kind: transitionReplace, next: s} }

func (t Transition) IsStay() bool { return t.kind == transitionStay }
func (t Transition) Next() State  { return t.next }

// StateStack updates and draws only its top state. States below the top
// keep their objects but receive no frames until they are on top again.
type StateStack struct{ list []State }

func (ss *StateStack) Push(s State) {
	ss.list = append(ss.list, s)
	s.OnEnter()
}

func (ss *StateStack) Pop() (State, bool) {
	if len(ss.list) == 0 {
		return nil, false
	}
	i := len(ss.list) - 1
	s := ss.list[i]
	ss.list[i] = nil
	ss.list = ss.list[:i]
	s.OnExit()
	if top, ok := ss.Top(); ok {
		top.OnEnter()
	}
	return s, true
}

func (ss *StateStack) Top() (State, bool) {
	if len(ss.list) == 0 {
		return nil, false
	}
	return ss.list[len(ss.list)-1], true
}

func (ss *StateStack) Len() int { return len(ss.list) }

// Update runs the top state and applies the transition it returns.
func (ss *StateStack) Update(now float64) {
	top, ok := ss.Top()
	if !ok {
		return
	}
	t := top.Update(now)
	switch t.kind {
	case transitionPush:
		if t.next != nil {
			ss.Push(t.next)
		}
	case transitionPop:
		ss.Pop()
	case transitionReplace:
		if t.next == nil {
			return
		}
		i := len(ss.list) - 1
		ss.list[i].OnExit()
		ss.list[i] = t.next
		t.next.OnEnter()
	}
}

func (ss *StateStack) Draw() {
	if top, ok := ss.Top(); ok {
		top.Draw()
	}
}
