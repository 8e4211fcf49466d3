package core

import (
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
// The loop is frame-driven: one Step per display refresh (swap interval).
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := NewEngine(win, rend)
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	for !win.ShouldClose() {
		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		now := float64(eng.Uptime()) / float64(time.Millisecond)
		eng.Step(app, now)

		// Present
		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	log.Println("[core] engine exit")
	return nil
}
