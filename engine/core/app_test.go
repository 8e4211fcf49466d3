package core

import (
	"reflect"
	"testing"
)

type orderLog []string

type stepRenderer struct{ log *orderLog }

func (r stepRenderer) Resize(int, int) {}
func (r stepRenderer) Clear()          { *r.log = append(*r.log, "clear") }
func (r stepRenderer) Shutdown()       {}

type stepApp struct {
	log *orderLog
	in  *Input
}

func (a *stepApp) OnStart(*Engine) {}
func (a *stepApp) OnUpdate(e *Engine, now float64) {
	state := "update"
	if e.Input.Pressed() {
		state += "+press"
	}
	*a.log = append(*a.log, state)
}
func (a *stepApp) OnRender(*Engine)       { *a.log = append(*a.log, "render") }
func (a *stepApp) OnEvent(*Engine, Event) {}
func (a *stepApp) OnShutdown(*Engine)     {}
func (a *stepApp) OnTimer(TimerTag)       { *a.log = append(*a.log, "timer") }

func TestEngineStepOrder(t *testing.T) {
	var log orderLog
	e := NewEngine(nil, stepRenderer{log: &log})
	app := &stepApp{log: &log}
	e.Timers.Schedule(0, app, 0, false)
	e.Input.Handle(EventPointerButton{Down: true})

	e.Step(app, 16)

	want := orderLog{"timer", "update+press", "clear", "render"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("step order = %v, want %v", log, want)
	}
}
