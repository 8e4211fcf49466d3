package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)               // called once after window/renderer init
	OnUpdate(e *Engine, now float64) // called once per display refresh, after input and timers
	OnRender(e *Engine)              // called after OnUpdate, once the frame is cleared
	OnEvent(e *Engine, ev Event)     // input/window events
	OnShutdown(e *Engine)            // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Timers   *Scheduler
	start    time.Time
}

// NewEngine wires the per-frame services around a window and renderer.
func NewEngine(win Window, rend Renderer) *Engine {
	return &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Timers:   NewScheduler(),
		start:    time.Now(),
	}
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Step runs one frame. Input edges are latched first, then timers fire,
// then the app updates, and only then is the frame cleared and drawn.
func (e *Engine) Step(app App, now float64) {
	e.Input.Update()
	e.Timers.Poll(now)
	app.OnUpdate(e, now)
	e.Renderer.Clear()
	app.OnRender(e)
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the part of the graphics device the loop drives directly.
type Renderer interface {
	Resize(w, h int)
	Clear()
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventPointerMove reports a pointer position in scene units.
type EventPointerMove struct {
	X, Y    float64
	Precise bool // mouse rather than touch/pen
}

func (EventPointerMove) isEvent() {}

// EventPointerButton reports a press (Down) or release of the primary pointer.
type EventPointerButton struct {
	X, Y    float64
	Down    bool
	Precise bool
}

func (EventPointerButton) isEvent() {}

// Key enum (subset used by the games).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyW
	KeyA
	KeyS
	KeyD
	KeyX
	Key0
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
