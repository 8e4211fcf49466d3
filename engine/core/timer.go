package core

// TimerTag tells a handler which of its timers fired.
type TimerTag int

// TimerID identifies a scheduled timer for cancellation. Zero is never issued.
type TimerID uint64

// TimerHandler receives expired timers. One handler usually owns several tags.
type TimerHandler interface {
	OnTimer(tag TimerTag)
}

type timer struct {
	id       TimerID
	start    float64
	delay    float64
	repeat   bool
	tag      TimerTag
	handler  TimerHandler
	disabled bool
	expired  bool
}

// Scheduler holds cooperative timers polled once per frame. Timestamps are
// milliseconds on the frame clock.
type Scheduler struct {
	timers []timer
	now    float64
	nextID TimerID
}

func NewScheduler() *Scheduler { return &Scheduler{} }

// Now returns the timestamp of the last poll.
func (s *Scheduler) Now() float64 { return s.now }

// Len reports timers still waiting, including cancelled ones not yet swept.
func (s *Scheduler) Len() int { return len(s.timers) }

// Schedule arms a timer that fires on the first poll at or after now+delay.
// With repeat the timer re-arms from the firing timestamp.
func (s *Scheduler) Schedule(delay float64, h TimerHandler, tag TimerTag, repeat bool) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{
		id:      s.nextID,
		start:   s.now,
		delay:   delay,
		repeat:  repeat,
		tag:     tag,
		handler: h,
	})
	return s.nextID
}

// Cancel flags a timer disabled. It takes effect at the next poll; a timer
// already firing in the current poll is not interrupted.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i := range s.timers {
		if s.timers[i].id == id {
			s.timers[i].disabled = true
			return true
		}
	}
	return false
}

// CancelHandler disables every timer owned by h.
func (s *Scheduler) CancelHandler(h TimerHandler) {
	for i := range s.timers {
		if s.timers[i].handler == h {
			s.timers[i].disabled = true
		}
	}
}

// Poll fires due timers in scheduling order. Timers scheduled from inside a
// handler are first considered on the next poll.
func (s *Scheduler) Poll(now float64) {
	s.now = now
	n := len(s.timers)
	sweep := false
	for i := 0; i < n; i++ {
		t := &s.timers[i]
		if t.disabled {
			sweep = true
			continue
		}
		if now < t.start+t.delay {
			continue
		}
		if t.repeat {
			t.start = now
		} else {
			t.expired = true
			sweep = true
		}
		h, tag := t.handler, t.tag
		if h != nil {
			h.OnTimer(tag)
		}
	}
	if !sweep {
		return
	}
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.expired && !t.disabled {
			kept = append(kept, t)
		}
	}
	clear(s.timers[len(kept):])
	s.timers = kept
}
