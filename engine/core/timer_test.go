package core

import "testing"

type timerLog struct {
	fired []TimerTag
	s     *Scheduler
	chain bool
}

func (l *timerLog) OnTimer(tag TimerTag) {
	l.fired = append(l.fired, tag)
	if l.chain && tag == 1 {
		l.s.Schedule(0, l, 2, false)
	}
}

func TestSchedulerFiresAtDeadline(t *testing.T) {
	s := NewScheduler()
	l := &timerLog{}
	s.Poll(100)
	s.Schedule(50, l, 7, false)

	s.Poll(149)
	if len(l.fired) != 0 {
		t.Fatalf("fired early: %v", l.fired)
	}
	s.Poll(150)
	if len(l.fired) != 1 || l.fired[0] != 7 {
		t.Fatalf("fired = %v, want [7]", l.fired)
	}
	s.Poll(500)
	if len(l.fired) != 1 {
		t.Errorf("one-shot timer fired again: %v", l.fired)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after expiry, want 0", s.Len())
	}
}

func TestSchedulerRepeatRearmsFromFiringTime(t *testing.T) {
	s := NewScheduler()
	l := &timerLog{}
	s.Schedule(10, l, 1, true)

	s.Poll(15) // fires, rearms at 15
	s.Poll(24) // not yet
	s.Poll(25) // fires
	if len(l.fired) != 2 {
		t.Errorf("fired %d times, want 2", len(l.fired))
	}
}

func TestSchedulerCancelTakesEffectAtNextPoll(t *testing.T) {
	s := NewScheduler()
	l := &timerLog{}
	id := s.Schedule(10, l, 1, false)
	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for a live timer")
	}
	s.Poll(100)
	if len(l.fired) != 0 {
		t.Errorf("cancelled timer fired: %v", l.fired)
	}
	if s.Cancel(id) {
		t.Error("Cancel should report false once the timer is swept")
	}
}

func TestSchedulerTimersAddedDuringPollWait(t *testing.T) {
	s := NewScheduler()
	l := &timerLog{s: s, chain: true}
	s.Schedule(0, l, 1, false)

	s.Poll(1)
	if len(l.fired) != 1 {
		t.Fatalf("fired = %v, want only the first timer", l.fired)
	}
	s.Poll(2)
	if len(l.fired) != 2 || l.fired[1] != 2 {
		t.Errorf("fired = %v, want [1 2]", l.fired)
	}
}

func TestSchedulerCancelHandler(t *testing.T) {
	s := NewScheduler()
	a, b := &timerLog{}, &timerLog{}
	s.Schedule(0, a, 1, false)
	s.Schedule(0, b, 1, false)
	s.CancelHandler(a)
	s.Poll(1)
	if len(a.fired) != 0 || len(b.fired) != 1 {
		t.Errorf("a=%v b=%v", a.fired, b.fired)
	}
}
