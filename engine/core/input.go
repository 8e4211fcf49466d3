package core

// Input latches raw events between frames and exposes edge-triggered state
// for the current frame. Handle may be called any number of times per frame;
// Update is called exactly once at the start of each frame.
type Input struct {
	x, y         float64
	lastX, lastY float64
	seen         bool
	precise      bool

	newPress   bool
	newRelease bool
	newKeyDown map[Key]bool
	newKeyUp   map[Key]bool

	moved     bool
	press     bool
	release   bool
	keyDown   map[Key]bool
	keyUp     map[Key]bool
	held      map[Key]bool
	clickRead bool
}

func NewInput() *Input {
	return &Input{
		newKeyDown: map[Key]bool{},
		newKeyUp:   map[Key]bool{},
		keyDown:    map[Key]bool{},
		keyUp:      map[Key]bool{},
		held:       map[Key]bool{},
	}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down {
			if !in.held[e.Key] {
				in.newKeyDown[e.Key] = true
			}
		} else {
			in.newKeyUp[e.Key] = true
		}
		in.held[e.Key] = e.Down
	case EventPointerMove:
		in.x, in.y = e.X, e.Y
		in.precise = e.Precise
		in.seen = true
	case EventPointerButton:
		in.x, in.y = e.X, e.Y
		in.precise = e.Precise
		in.seen = true
		if e.Down {
			in.newPress = true
		} else {
			in.newRelease = true
		}
	}
}

// Update converts the events latched since the previous call into this
// frame's edge flags.
func (in *Input) Update() {
	in.moved = false
	if in.seen && (in.x != in.lastX || in.y != in.lastY) {
		in.lastX, in.lastY = in.x, in.y
		in.moved = true
	}

	in.press, in.newPress = in.newPress, false
	in.release, in.newRelease = in.newRelease, false

	clear(in.keyDown)
	for k := range in.newKeyDown {
		in.keyDown[k] = true
	}
	clear(in.newKeyDown)

	clear(in.keyUp)
	for k := range in.newKeyUp {
		in.keyUp[k] = true
	}
	clear(in.newKeyUp)

	in.clickRead = false
}

// Position returns the last known pointer position.
func (in *Input) Position() (float32, float32) { return float32(in.x), float32(in.y) }

// Moved reports whether the pointer moved since the previous frame.
func (in *Input) Moved() bool { return in.moved }

// Pressed reports a primary press this frame.
func (in *Input) Pressed() bool { return in.press }

// Released reports a primary release this frame.
func (in *Input) Released() bool { return in.release }

// Precise reports whether the last pointer event came from a mouse.
func (in *Input) Precise() bool { return in.precise }

// SeenPointer reports whether any pointer event has arrived yet.
func (in *Input) SeenPointer() bool { return in.seen }

// Click is release-based for precise pointers and press-based otherwise.
// It reports false once ConsumeClick has been called this frame.
func (in *Input) Click() bool {
	if in.clickRead {
		return false
	}
	if in.precise {
		return in.release
	}
	return in.press
}

// ConsumeClick marks this frame's click as handled.
func (in *Input) ConsumeClick() { in.clickRead = true }

func (in *Input) KeyPressed(k Key) bool  { return in.keyDown[k] }
func (in *Input) KeyReleased(k Key) bool { return in.keyUp[k] }
func (in *Input) IsKeyDown(k Key) bool   { return in.held[k] }

func (in *Input) Left() bool    { return in.keyDown[KeyA] || in.keyDown[KeyLeft] }
func (in *Input) Right() bool   { return in.keyDown[KeyD] || in.keyDown[KeyRight] }
func (in *Input) Cancel() bool  { return in.keyDown[KeyX] || in.keyDown[Key0] }
func (in *Input) Confirm() bool { return in.keyDown[KeySpace] || in.keyDown[KeyEnter] }
