package scene

import (
	"math/rand/v2"

	"github.com/hubastard/meowcade/engine/core"
)

const shakeStop core.TimerTag = iota

// Shaker jitters a camera offset until its timer runs out.
type Shaker struct {
	Reach float32 // max offset in scene units

	cam    *Camera2D
	timers *core.Scheduler
	rnd    func() float64
	timer  core.TimerID
	active bool
}

func NewShaker(cam *Camera2D, timers *core.Scheduler) *Shaker {
	return &Shaker{Reach: 5, cam: cam, timers: timers, rnd: rand.Float64}
}

// SetRand replaces the jitter source.
func (s *Shaker) SetRand(r *rand.Rand) { s.rnd = r.Float64 }

// Shake starts or extends shaking for ms milliseconds.
func (s *Shaker) Shake(ms float64) {
	if s.active {
		s.timers.Cancel(s.timer)
	}
	s.active = true
	s.timer = s.timers.Schedule(ms, s, shakeStop, false)
}

func (s *Shaker) Active() bool { return s.active }

// Update moves the camera once per frame while shaking.
func (s *Shaker) Update() {
	if s.active {
		s.cam.SetOffset(float32(s.rnd())*s.Reach, float32(s.rnd())*s.Reach)
	}
}

func (s *Shaker) OnTimer(tag core.TimerTag) {
	if tag != shakeStop {
		return
	}
	s.active = false
	s.cam.SetOffset(0, 0)
}
